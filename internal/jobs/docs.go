// Package jobs provides scheduled background tasks for the courier service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for delivery fulfillment.
//
// # Available Jobs
//
// CourierMovementJob - steps the courier position of every out-for-delivery
// task toward its order destination, simulating couriers in transit.
//
// # Scheduling
//
// The job uses a six-field cron expression with second granularity, taken
// from configuration. The default "* * * * * *" runs every second, which
// keeps the simulated positions responsive for the location read endpoint.
//
// # Error Handling
//
// Movement failures are logged and the job keeps running; a transient
// database error on one tick does not stop the simulation.
package jobs
