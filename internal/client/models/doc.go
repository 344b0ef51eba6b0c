// Package models defines the client-side data shapes exchanged with the
// EthioCareer REST API. JSON tags follow the API's camelCase field names;
// optional server fields are pointers so "absent" and "zero" stay distinct.
package models
