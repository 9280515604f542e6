package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tastebud-labs/foodadmin/internal/client"
	"github.com/tastebud-labs/foodadmin/internal/console"
	"github.com/tastebud-labs/foodadmin/internal/validate"
	"github.com/tastebud-labs/foodadmin/internal/xerrors"
)

var restaurantsCmd = &cobra.Command{
	Use:   "restaurants",
	Short: "Manage the platform's restaurants",
}

var restaurantsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List restaurants with pagination",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession()
		if err != nil {
			return err
		}
		defer sess.close()

		screen := console.NewRestaurantScreen(sess.api, sess.cfg, sess.notify, sess.aud)
		defer screen.Close()
		ctx := context.Background()
		if err := screen.Load(ctx); err != nil {
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

var restaurantsDetailsCmd = &cobra.Command{
	Use:   "details <id>",
	Short: "Show a restaurant with its subcategories and menu items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession()
		if err != nil {
			return err
		}
		defer sess.close()

		screen := console.NewRestaurantScreen(sess.api, sess.cfg, sess.notify, sess.aud)
		defer screen.Close()
		if err := screen.Load(context.Background()); err != nil {
			return err
		}
		record, err := screen.ViewDetails(args[0])
		if err != nil {
			return err
		}
		console.RenderDetails(os.Stdout, record)
		return nil
	},
}

var restaurantsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a restaurant",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession()
		if err != nil {
			return err
		}
		defer sess.close()

		screen := console.NewRestaurantScreen(sess.api, sess.cfg, sess.notify, sess.aud)
		defer screen.Close()
		ctx := context.Background()
		if err := screen.Load(ctx); err != nil {
			return err
		}

		form := restaurantFormFromFlags(cmd)
		image, err := imageFromFlag(cmd)
		if err != nil {
			return err
		}
		outcome, err := screen.Create(ctx, form, image)
		if err != nil {
			return fmt.Errorf("%s", xerrors.UserMessage(err, "Unable to create restaurant."))
		}
		sess.notify.Success(outcome.Message)
		return nil
	},
}

var restaurantsEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit restaurant fields",
	Long:  `Edits a restaurant by id. Pass each change as --set field=value; fields use the API names (name, address, category_id, details, opening_time, closing_time, tax_rate, rating, locationAddress, latitude, longitude).`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession()
		if err != nil {
			return err
		}
		defer sess.close()

		screen := console.NewRestaurantScreen(sess.api, sess.cfg, sess.notify, sess.aud)
		defer screen.Close()
		ctx := context.Background()
		if err := screen.Load(ctx); err != nil {
			return err
		}

		changes, err := parseSetFlags(cmd)
		if err != nil {
			return err
		}
		image, err := imageFromFlag(cmd)
		if err != nil {
			return err
		}
		if err := screen.Edit(ctx, args[0], changes, image); err != nil {
			return fmt.Errorf("%s", xerrors.UserMessage(err, "Unable to update restaurant."))
		}
		sess.notify.Success("Restaurant updated successfully")
		return nil
	},
}

var restaurantsToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Flip a restaurant's active state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession()
		if err != nil {
			return err
		}
		defer sess.close()

		screen := console.NewRestaurantScreen(sess.api, sess.cfg, sess.notify, sess.aud)
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

func restaurantFormFromFlags(cmd *cobra.Command) validate.Form {
	form := validate.Form{}
	for flagName, field := range map[string]string{
		"name":             "name",
		"address":          "address",
		"category-id":      "category_id",
		"details":          "details",
		"opening-time":     "opening_time",
		"closing-time":     "closing_time",
		"tax-rate":         "tax_rate",
		"rating":           "rating",
		"location-address": "locationAddress",
		"latitude":         "latitude",
		"longitude":        "longitude",
	} {
		if v, _ := cmd.Flags().GetString(flagName); v != "" {
			form[field] = v
		}
	}
	return form
}

func parseSetFlags(cmd *cobra.Command) (map[string]string, error) {
	pairs, _ := cmd.Flags().GetStringArray("set")
	changes := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		field, value, ok := strings.Cut(pair, "=")
		if !ok || field == "" {
			return nil, fmt.Errorf("invalid --set %q, expected field=value", pair)
		}
		changes[field] = value
	}
	return changes, nil
}

func imageFromFlag(cmd *cobra.Command) (*client.Image, error) {
	path, _ := cmd.Flags().GetString("image")
	if path == "" {
		return nil, nil
	}
	return client.LoadImage(path)
}

func init() {
	restaurantsListCmd.Flags().Int("page", 1, "Page number to show")
	restaurantsListCmd.Flags().String("sort", "", "Sort by column (name, category, address, rating, tax, active)")

	for _, c := range []*cobra.Command{restaurantsCreateCmd, restaurantsEditCmd} {
		c.Flags().String("image", "", "Path to a JPEG, PNG or GIF image")
	}
	restaurantsCreateCmd.Flags().String("name", "", "Restaurant name")
	restaurantsCreateCmd.Flags().String("address", "", "Street address")
	restaurantsCreateCmd.Flags().String("category-id", "", "Category id")
	restaurantsCreateCmd.Flags().String("details", "", "Free-text details")
	restaurantsCreateCmd.Flags().String("opening-time", "", "Opening time, HH:MM")
	restaurantsCreateCmd.Flags().String("closing-time", "", "Closing time, HH:MM")
	restaurantsCreateCmd.Flags().String("tax-rate", "", "Tax rate percentage")
	restaurantsCreateCmd.Flags().String("rating", "", "Rating, 0 to 5")
	restaurantsCreateCmd.Flags().String("location-address", "", "Map location address")
	restaurantsCreateCmd.Flags().String("latitude", "", "Latitude")
	restaurantsCreateCmd.Flags().String("longitude", "", "Longitude")
	restaurantsEditCmd.Flags().StringArray("set", nil, "Field change as field=value, repeatable")

	restaurantsCmd.AddCommand(restaurantsListCmd, restaurantsDetailsCmd, restaurantsCreateCmd, restaurantsEditCmd, restaurantsToggleCmd)
	rootCmd.AddCommand(restaurantsCmd)
}
