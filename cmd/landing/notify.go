package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apiflowstudio/landing/modules/signup"
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Submit an email address to a running site's signup form",
	RunE:  runNotify,
}

func init() {
	notifyCmd.Flags().String("email", "", "email address to sign up")
	notifyCmd.Flags().String("url", "http://localhost:8080", "base URL of the site")
}

func runNotify(cmd *cobra.Command, _ []string) error {
	addr, _ := cmd.Flags().GetString("email")
	baseURL, _ := cmd.Flags().GetString("url")

	form := signup.NewForm(signup.NewClient(baseURL))
	state, err := form.Submit(cmd.Context(), addr)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	if state.Status != signup.StatusSuccess {
		return fmt.Errorf("signup failed: %s", state.Message)
	}
	return nil
}
