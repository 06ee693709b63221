// Package dbc parses DBC vehicle-network description text into an in-memory
// Database of nodes, value tables and message headers.
//
// DBC files are line oriented: each statement starts with a keyword such as
// VERSION, BU_, VAL_TABLE_ or BO_. The package is organized in three layers:
//
//   - Tokenizer: splits one statement into whitespace-delimited tokens with a
//     single token of lookahead.
//   - Directive interpreters (ParseVersion, ParseNodes, ParseValueTable,
//     ParseMessage): consume one statement each and mutate a Database.
//   - Decoder: feeds a file to the interpreters line by line via a Registry
//     and collects diagnostics.
//
// Interpreters never fail outright. Each returns a Severity: Success,
// Malformed (a cosmetic defect was tolerated) or Critical (the statement was
// abandoned part way and the Database may hold a partial result).
//
// Usage:
//
//	db, report, err := dbc.ParseFile("vehicle.dbc")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
//	for _, d := range report.Diagnostics {
//	    fmt.Println(d)
//	}
//	fmt.Println(db.Version(), db.NodeCount(), db.ValueTableCount())
package dbc
