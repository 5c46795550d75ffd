// Package courier contains the courier roster aggregate: identity, contact
// details, and availability status. Delivery tasks reference couriers by id
// only; nothing in the task lifecycle depends on roster state.
package courier
