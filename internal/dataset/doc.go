// Package dataset persists named dataframes as timestamped CSV files.
//
// Every Save call stamps its whole batch with one timestamp, so a directory
// accumulates a version history per dataset:
//
//	output_data/
//	  admissions_20240115_093000.csv
//	  admissions_20240116_101500.csv
//	  patients_20240116_101500.csv
//
// Load returns the newest version of each requested name. Files are never
// rewritten or removed by this package.
package dataset
