// cmd/storefront/books.go
package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	"storefront/internal/books"
	"storefront/internal/status"
)

var (
	bookTitle  string
	bookAuthor string
	bookYear   string
	bookRead   string
	bookReadOn bool
	assumeYes  bool
)

var booksCmd = &cobra.Command{
	Use:   "books",
	Short: "Manage books on the remote books API",
}

var booksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every book",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		list, st := newBooksAdmin().Load(cmd.Context())
		if st.Kind == status.KindError {
			return errors.New(st.Message)
		}
		if err := writeBooks(cmd.OutOrStdout(), list); err != nil {
			return err
		}
		return report(cmd, st)
	},
}

var booksGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one book as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, st := newBooksAdmin().Lookup(cmd.Context(), args[0])
		if st.Kind == status.KindError {
			return errors.New(st.Message)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

var booksAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a book",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		form := books.AddForm{Title: bookTitle, Author: bookAuthor, Year: bookYear, IsRead: bookReadOn}
		return report(cmd, newBooksAdmin().Add(cmd.Context(), form))
	},
}

var booksUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update the given fields of a book",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		form := books.UpdateForm{ID: args[0], Title: bookTitle, Author: bookAuthor, Year: bookYear, IsRead: bookRead}
		return report(cmd, newBooksAdmin().Update(cmd.Context(), form))
	},
}

var booksDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a book after confirmation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var confirm books.Confirmer = surveyConfirmer{}
		if assumeYes {
			confirm = books.Answered(true)
		}
		return report(cmd, newBooksAdmin().Delete(cmd.Context(), args[0], confirm))
	},
}

func init() {
	booksAddCmd.Flags().StringVar(&bookTitle, "title", "", "Title (required)")
	booksAddCmd.Flags().StringVar(&bookAuthor, "author", "", "Author (required)")
	booksAddCmd.Flags().StringVar(&bookYear, "year", "", "Publication year")
	booksAddCmd.Flags().BoolVar(&bookReadOn, "read", false, "Mark the book as read")

	booksUpdateCmd.Flags().StringVar(&bookTitle, "title", "", "New title")
	booksUpdateCmd.Flags().StringVar(&bookAuthor, "author", "", "New author")
	booksUpdateCmd.Flags().StringVar(&bookYear, "year", "", "New publication year")
	booksUpdateCmd.Flags().StringVar(&bookRead, "read", "", "New read state (yes or no)")

	booksDeleteCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Delete without asking")

	booksCmd.AddCommand(booksListCmd, booksGetCmd, booksAddCmd, booksUpdateCmd, booksDeleteCmd)
}

// report prints a success or info status and turns an error status into the
// command error. A zero status prints nothing.
func report(cmd *cobra.Command, st status.Status) error {
	switch {
	case st.IsZero():
		return nil
	case st.Kind == status.KindError:
		return errors.New(st.Message)
	default:
		_, err := fmt.Fprintln(cmd.OutOrStdout(), st.Message)
		return err
	}
}

func writeBooks(w io.Writer, list []books.Book) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tYEAR\tREAD")
	for _, row := range books.Rows(list) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", row.ID, row.Title, row.Author, row.Year, row.Read)
	}
	return tw.Flush()
}

// surveyConfirmer asks on the terminal.
type surveyConfirmer struct{}

func (surveyConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var ok bool
	if err := survey.AskOne(&survey.Confirm{Message: prompt}, &ok); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return false, nil
		}
		return false, errors.Wrap(err, "confirm")
	}
	return ok, nil
}

