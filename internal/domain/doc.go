// Package domain contains the core entities of the workstation rental
// platform: offices, their add-on services, user-submitted ratings, and
// user accounts. Entities are plain structs created through constructors
// that enforce their invariants; business rules that span entities or
// depend on time live in the service layer.
package domain
