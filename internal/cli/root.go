// Package cli implementa animalctl: listado, detalle y alta de animales
// contra la API HTTP.
package cli

import (
	"io"
	"strings"
	"time"

	"animals-safety/internal/platform/httpclient"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type env struct {
	v   *viper.Viper
	out io.Writer
}

// NewRootCmd arma el árbol de comandos. Flags se pueden setear por env
// con prefijo ANIMALCTL_ (ej. ANIMALCTL_SERVER).
func NewRootCmd(out io.Writer) *cobra.Command {
	e := &env{v: viper.New(), out: out}
	e.v.SetEnvPrefix("ANIMALCTL")
	e.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	e.v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "animalctl",
		Short:         "Record and browse animals",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	root.PersistentFlags().String("server", "http://localhost:8080", "API base URL")
	root.PersistentFlags().Bool("json", false, "output JSON")
	root.PersistentFlags().Duration("timeout", 5*time.Second, "request timeout")
	_ = e.v.BindPFlag("server", root.PersistentFlags().Lookup("server"))
	_ = e.v.BindPFlag("json", root.PersistentFlags().Lookup("json"))
	_ = e.v.BindPFlag("timeout", root.PersistentFlags().Lookup("timeout"))

	root.AddCommand(
		listCmd(e),
		showCmd(e),
		createCmd(e),
		breedsCmd(e),
	)
	return root
}

func (e *env) client() (*httpclient.Client, error) {
	return httpclient.New(httpclient.Options{
		BaseURL:   e.v.GetString("server"),
		Timeout:   e.v.GetDuration("timeout"),
		UserAgent: "animalctl",
	})
}
