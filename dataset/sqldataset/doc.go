/*
Package sqldataset provides functions to store datasets on and load them from
SQL databases.

The package uses 2 database tables:
  - discreteValues, for storing each distinct value once
  - samples, with a column per attribute

Samples are stored on the samples table, with their values as references to
rows in the discreteValues table. The differences between database engines
are hidden behind the Adapter interface, implemented by the sqlite3adapter
and pgadapter packages.
*/
package sqldataset
