// Package task contains the DeliveryTask aggregate and its supporting value
// objects: the lifecycle Status state machine and the ConfirmationType that
// selects how a customer proves receipt.
package task
