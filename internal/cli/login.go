package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rbmartins/secretaria/internal/model"
	"github.com/rbmartins/secretaria/internal/ui"
	"github.com/rbmartins/secretaria/internal/validate"
)

var (
	loginName  string
	loginEmail string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Cria o perfil local",
	RunE: func(cmd *cobra.Command, args []string) error {
		if errs := validate.Login(loginName, loginEmail); !errs.Valid() {
			return errors.New(errs.String())
		}
		u := app.Users.SetUser(&model.User{
			Name:  strings.TrimSpace(loginName),
			Email: strings.TrimSpace(loginEmail),
		})
		ui.OK("bem-vindo, " + u.Name)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove o perfil local",
	RunE: func(cmd *cobra.Command, args []string) error {
		if app.Users.Current() == nil {
			ui.OK("nenhum perfil ativo (nada a fazer)")
			return nil
		}
		app.Users.Clear()
		ui.OK("até logo")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Mostra o perfil ativo",
	RunE: func(cmd *cobra.Command, args []string) error {
		u := app.Users.Current()
		if u == nil {
			fmt.Println(ui.MutedStyle.Render("nenhum perfil ativo"))
			fmt.Println("Rode: secretaria login --nome \"Seu Nome\" --email voce@exemplo.com")
			return nil
		}
		fmt.Printf("nome:  %s\n", u.Name)
		fmt.Printf("email: %s\n", u.Email)
		fmt.Printf("desde: %s\n", u.CreatedAt.Format(time.RFC3339))
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginName, "nome", "", "nome do usuário")
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "email do usuário")
	_ = loginCmd.MarkFlagRequired("nome")
	_ = loginCmd.MarkFlagRequired("email")
}
