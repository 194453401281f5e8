package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
	Long:  `List, view, create, update, or delete users.`,
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users",
	RunE:  runUserList,
}

var userGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show a user",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserGet,
}

var userCreateCmd = &cobra.Command{
	Use:   "create [name] [email]",
	Short: "Create a user",
	Args:  cobra.ExactArgs(2),
	RunE:  runUserCreate,
}

var userUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a user",
	Long:  `Update a user's name or email. Fields not given are left unchanged.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runUserUpdate,
}

var userDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a user",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserDelete,
}

// Flags for the update command.
var (
	userUpdateName  string
	userUpdateEmail string
)

func init() {
	userUpdateCmd.Flags().StringVarP(&userUpdateName, "name", "n", "", "New name")
	userUpdateCmd.Flags().StringVarP(&userUpdateEmail, "email", "e", "", "New email")

	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userGetCmd)
	userCmd.AddCommand(userCreateCmd)
	userCmd.AddCommand(userUpdateCmd)
	userCmd.AddCommand(userDeleteCmd)
	rootCmd.AddCommand(userCmd)
}

func runUserList(cmd *cobra.Command, _ []string) error {
	if userService == nil {
		return errors.New("user service not configured")
	}

	ctx := context.Background()

	users, err := userService.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	if len(users) == 0 {
		cmd.Println("No users found.")
		return nil
	}

	for i := range users {
		cmd.Printf("  %s\n", users[i])
	}
	cmd.Printf("\nTotal: %d users\n", len(users))
	return nil
}

func runUserGet(cmd *cobra.Command, args []string) error {
	if userService == nil {
		return errors.New("user service not configured")
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	ctx := context.Background()

	user, err := userService.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		cmd.Printf("User %d not found.\n", id)
		return nil
	}

	cmd.Printf("%s\n", user)
	return nil
}

func runUserCreate(cmd *cobra.Command, args []string) error {
	if userService == nil {
		return errors.New("user service not configured")
	}

	name, email := args[0], args[1]
	ctx := context.Background()

	user, err := userService.Create(ctx, name, email)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	cmd.Printf("Created %s\n", user)
	return nil
}

func runUserUpdate(cmd *cobra.Command, args []string) error {
	if userService == nil {
		return errors.New("user service not configured")
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if userUpdateName == "" && userUpdateEmail == "" {
		return errors.New("nothing to update: pass --name or --email")
	}
	ctx := context.Background()

	user, err := userService.Update(ctx, id, userUpdateName, userUpdateEmail)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if user == nil {
		cmd.Printf("User %d not found.\n", id)
		return nil
	}

	cmd.Printf("Updated %s\n", user)
	return nil
}

func runUserDelete(cmd *cobra.Command, args []string) error {
	if userService == nil {
		return errors.New("user service not configured")
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	ctx := context.Background()

	existed, err := userService.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if !existed {
		cmd.Printf("User %d not found.\n", id)
		return nil
	}

	cmd.Printf("Deleted user %d.\n", id)
	return nil
}

// parseID parses a positive integer ID argument.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: want a positive integer", arg)
	}
	return id, nil
}
