// cmd/storefront/hashpw.go
package main

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	"storefront/internal/auth"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password [password]",
	Short: "Print an admin.password_hash value for a password",
	Long: `Hashes a password with Argon2id. Put the output in admin.password_hash
(or STOREFRONT_ADMIN_PASSWORD_HASH) to guard the books admin with basic auth.
Without an argument the password is read from a prompt.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var password string
		if len(args) == 1 {
			password = args[0]
		} else if err := survey.AskOne(&survey.Password{Message: "Password:"}, &password, survey.WithValidator(survey.Required)); err != nil {
			return errors.Wrap(err, "read password")
		}

		encoded, err := auth.HashPassword(password)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), encoded)
		return nil
	},
}
