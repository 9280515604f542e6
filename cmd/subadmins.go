package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tastebud-labs/foodadmin/internal/console"
	"github.com/tastebud-labs/foodadmin/internal/validate"
	"github.com/tastebud-labs/foodadmin/internal/xerrors"
)

var subadminsCmd = &cobra.Command{
	Use:   "subadmins",
	Short: "Manage sub-admin accounts",
}

var subadminsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sub-admins with pagination",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession()
		if err != nil {
			return err
		}
		defer sess.close()

		screen := console.NewSubAdminScreen(sess.api, sess.cfg, sess.notify, sess.aud)
		defer screen.Close()
		if err := screen.Load(context.Background()); err != nil {
			return err
		}
		if column, _ := cmd.Flags().GetString("sort"); column != "" {
			if err := screen.Sort(column); err != nil {
				return err
			}
		}
		page, _ := cmd.Flags().GetInt("page")
		screen.Pager().GoTo(page)
		screen.Render(os.Stdout)
		return nil
	},
}

var subadminsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a sub-admin account",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession()
		if err != nil {
			return err
		}
		defer sess.close()

		screen := console.NewSubAdminScreen(sess.api, sess.cfg, sess.notify, sess.aud)
		defer screen.Close()
		ctx := context.Background()
		if err := screen.Load(ctx); err != nil {
			return err
		}

		form := validate.Form{}
		for flagName, field := range map[string]string{
			"full-name":     "full_name",
			"email":         "email",
			"mobile":        "mobile",
			"password":      "password",
			"restaurant-id": "restaurant_id",
		} {
			if v, _ := cmd.Flags().GetString(flagName); v != "" {
				form[field] = v
			}
		}
		outcome, err := screen.Create(ctx, form)
		if err != nil {
			return fmt.Errorf("%s", xerrors.UserMessage(err, "Unable to create sub-admin."))
		}
		sess.notify.Success(outcome.Message)
		return nil
	},
}

var subadminsEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit sub-admin fields",
	Long:  `Edits a sub-admin by id. Pass each change as --set field=value; fields use the API names (full_name, email, mobile, restaurant_id).`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession()
		if err != nil {
			return err
		}
		defer sess.close()

		screen := console.NewSubAdminScreen(sess.api, sess.cfg, sess.notify, sess.aud)
		defer screen.Close()
		ctx := context.Background()
		if err := screen.Load(ctx); err != nil {
			return err
		}
		changes, err := parseSetFlags(cmd)
		if err != nil {
			return err
		}
		if err := screen.Edit(ctx, args[0], changes); err != nil {
			return fmt.Errorf("%s", xerrors.UserMessage(err, "Unable to update sub-admin."))
		}
		sess.notify.Success("Sub-admin updated successfully")
		return nil
	},
}

var subadminsToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Flip a sub-admin's active state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession()
		if err != nil {
			return err
		}
		defer sess.close()

		screen := console.NewSubAdminScreen(sess.api, sess.cfg, sess.notify, sess.aud)
		defer screen.Close()
		ctx := context.Background()
		if err := screen.Load(ctx); err != nil {
			return err
		}
		if err := screen.Toggle(ctx, args[0]); err != nil {
			return fmt.Errorf("%s", xerrors.UserMessage(err, "Unable to update status."))
		}
		return nil
	},
}

func init() {
	subadminsListCmd.Flags().Int("page", 1, "Page number to show")
	subadminsListCmd.Flags().String("sort", "", "Sort by column (name, email, restaurant, cod-orders, online-orders, active)")

	subadminsCreateCmd.Flags().String("full-name", "", "Full name, letters and spaces")
	subadminsCreateCmd.Flags().String("email", "", "Email address")
	subadminsCreateCmd.Flags().String("mobile", "", "10 digit mobile number")
	subadminsCreateCmd.Flags().String("password", "", "Password, at least 6 characters")
	subadminsCreateCmd.Flags().String("restaurant-id", "", "Restaurant to assign")
	subadminsEditCmd.Flags().StringArray("set", nil, "Field change as field=value, repeatable")

	subadminsCmd.AddCommand(subadminsListCmd, subadminsCreateCmd, subadminsEditCmd, subadminsToggleCmd)
	rootCmd.AddCommand(subadminsCmd)
}
