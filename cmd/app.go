// Package cmd implements the CLI application to report on property
// financials.
package cmd

import (
	"flag"

	"github.com/google/subcommands"
	"github.com/parkrow/propfin"
)

// Commands lists the subcommands for registration by the main package.
var Commands = []subcommands.Command{
	&cashFlowCmd{},
	&balanceSheetCmd{},
	&t12Cmd{},
	&varianceCmd{},
	&propertyCmd{},
	&portfolioCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global vaariables.

var apiURL = flag.String("api-url", "https://export.parkrow.example", "Base URL of the accounting export service")
var rentRollURL = flag.String("rentroll-url", "", "Base URL of the live rent-roll service. Empty disables the live fallback tier.")

// ExportClient is the central function to build the export API client.
func ExportClient() *propfin.ExportAPI {
	return &propfin.ExportAPI{BaseURL: *apiURL}
}

// Fallback builds the fallback chain for properties with incomplete records.
func Fallback() *propfin.FallbackProvider {
	p := &propfin.FallbackProvider{}
	if *rentRollURL != "" {
		p.RentRoll = &propfin.RentRollAPI{BaseURL: *rentRollURL}
	}
	return p
}
