package admin

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	adminDTO "turnero/internal/application/admin/dto"
	"turnero/internal/application/admin/usecases"
	"turnero/internal/infrastructure/auth"
	"turnero/internal/infrastructure/database"
	"turnero/internal/infrastructure/repository"
	"turnero/internal/interfaces/cli/bootstrap"
	"turnero/internal/shared/authorization"
	"turnero/internal/shared/constants"
)

// CreateAdminExecutor is satisfied by usecases.CreateAdminUseCase.
type CreateAdminExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreateAdminCommand) (*adminDTO.AdminDTO, error)
}

var (
	opts  bootstrap.Options
	input usecases.CreateAdminCommand
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin account tools",
	}

	cmd.PersistentFlags().StringVarP(&opts.Env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(newCreateCommand())
	return cmd
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an admin account",
		Long:  `Create a panel account. Use it to bootstrap the first admin; later accounts can be created from the panel.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&input.Username, "username", "u", "", "Login name (required)")
	cmd.Flags().StringVar(&input.Email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&input.FullName, "full-name", "", "Display name (required)")
	cmd.Flags().StringVar(&input.Role, "role", string(authorization.RoleAdmin), "Role (operador, supervisor, admin)")
	cmd.Flags().StringVarP(&input.Password, "password", "p", "", "Password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("full-name")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	if input.Password == "" {
		password, err := promptPassword(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		input.Password = password
	}

	cfg, log, err := bootstrap.Init(opts)
	if err != nil {
		return err
	}
	defer database.Close()

	uc := usecases.NewCreateAdminUseCase(
		repository.NewAdminRepository(database.Get(), log),
		auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		log,
	)
	return createAdmin(cmd.Context(), uc, input, cmd.OutOrStdout())
}

func createAdmin(ctx context.Context, uc CreateAdminExecutor, in usecases.CreateAdminCommand, out io.Writer) error {
	created, err := uc.Execute(ctx, in)
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	fmt.Fprintf(out, "Admin %q created with id %d and role %s\n", created.Username, created.ID, created.Role)
	return nil
}

func promptPassword(out io.Writer) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("--password is required when stdin is not a terminal")
	}

	fmt.Fprint(out, "Password: ")
	first, err := term.ReadPassword(fd)
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Fprint(out, "Repeat password: ")
	second, err := term.ReadPassword(fd)
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	if string(first) != string(second) {
		return "", fmt.Errorf("passwords do not match")
	}
	password := strings.TrimSpace(string(first))
	if password == "" {
		return "", fmt.Errorf("password must not be empty")
	}
	return password, nil
}
