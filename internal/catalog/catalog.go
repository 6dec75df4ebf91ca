// Package catalog holds the curated static content served alongside student
// data: skill recommendation tables, learning paths, company prep kits,
// interview question banks, forums, events and opportunity listings. All of
// it is compiled in; accessors return copies so callers cannot mutate the
// source data.
package catalog
