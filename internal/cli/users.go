package cli

import "fmt"

type UsersCmd struct{}

func (c *UsersCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	users, err := ctx.Store.ListUsers()
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	if len(users) == 0 {
		fmt.Println("No users yet. Log a habit to create one.")
		return nil
	}

	for _, user := range users {
		fmt.Println(user)
	}
	return nil
}
