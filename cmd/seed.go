package cmd

import (
	"context"
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/tastebud-labs/foodadmin/internal/console"
	"github.com/tastebud-labs/foodadmin/internal/factories"
	"github.com/tastebud-labs/foodadmin/internal/xerrors"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create randomised restaurants and sub-admins through the API",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession()
		if err != nil {
			return err
		}
		defer sess.close()

		restaurantCount, _ := cmd.Flags().GetInt("restaurants")
		subAdminCount, _ := cmd.Flags().GetInt("subadmins")
		ctx := context.Background()

		rs := console.NewRestaurantScreen(sess.api, sess.cfg, sess.notify, sess.aud)
		defer rs.Close()
		if err := rs.Load(ctx); err != nil {
			return err
		}

		rf := &factories.RestaurantFactory{}
		bar := progressbar.Default(int64(restaurantCount+subAdminCount), "seeding")
		for i := 0; i < restaurantCount; i++ {
			if _, err := rs.Create(ctx, rf.CreateForm(rs.Categories()), nil); err != nil {
				return fmt.Errorf("%s", xerrors.UserMessage(err, "Seeding restaurants failed."))
			}
			bar.Add(1)
		}

		if subAdminCount == 0 {
			return nil
		}

		ss := console.NewSubAdminScreen(sess.api, sess.cfg, sess.notify, sess.aud)
		defer ss.Close()
		if err := ss.Load(ctx); err != nil {
			return err
		}
		sf := &factories.SubAdminFactory{}
		for i := 0; i < subAdminCount; i++ {
			if _, err := ss.Create(ctx, sf.CreateForm(ss.Restaurants())); err != nil {
				return fmt.Errorf("%s", xerrors.UserMessage(err, "Seeding sub-admins failed."))
			}
			bar.Add(1)
		}
		return nil
	},
}

func init() {
	seedCmd.Flags().Int("restaurants", 10, "Number of restaurants to create")
	seedCmd.Flags().Int("subadmins", 5, "Number of sub-admin accounts to create")
	rootCmd.AddCommand(seedCmd)
}
