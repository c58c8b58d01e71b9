// Command citizenshipbridge serves the Citizenship Bridge site and API and
// estimates naturalization eligibility from the command line.
//
// @title Citizenship Bridge API
// @version 1.0
// @description Naturalization eligibility estimates, reminders and the citizenship assistant.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Visitor token from POST /api/session, sent as "Bearer <token>".
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "citizenshipbridge/docs"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "citizenshipbridge",
		Short: "Citizenship Bridge web service",
		Long: `Citizenship Bridge serves the informational site, the citizenship eligibility
timer and its JSON API, email reminders and the naturalization assistant.`,
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(), newEligibilityCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
