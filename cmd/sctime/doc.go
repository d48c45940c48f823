// Command sctime records race lap times from the terminal.
//
// Every subcommand works on one stored session (selected with --session or
// the configured default). Mutating commands take the data directory lock,
// load the session into an entrant collection, apply the change through the
// same grid adapter a display would use, and save the result.
package main
