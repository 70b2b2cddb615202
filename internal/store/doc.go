// Package store provides the persistence contracts consumed by the
// service layer: a generic CRUD repository parametrized over the entity
// type, per-entity lookup extensions, sentinel errors, and the
// transaction helper that acts as the unit-of-work boundary.
package store
