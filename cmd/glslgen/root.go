package main

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/glslgen/internal/logging"
	"github.com/gogpu/glslgen/settings"
)

// app is the state shared by every command of one invocation.
type app struct {
	configPath string
	logLevel   string

	log      *logging.Logger
	store    *settings.Store
	settings settings.Settings
}

const glslgenVersion = "0.1.0-dev"

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:     "glslgen",
		Version: glslgenVersion,
		Short:   "glslgen writes GLSL shaders from built-in templates",
		Long: `glslgen writes GLSL source for the built-in shader templates.

Commands:
  list      List the available templates
  emit      Write one template for one target version
  variants  Write one template for several target versions
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.log = logging.New(cmd.ErrOrStderr(), logging.ParseLevel(a.logLevel))
			logging.SetDefault(a.log)
			a.store = settings.NewStore(a.configPath)
			a.store.Log = a.log
			a.settings = a.store.Load()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", settings.DefaultPath, "settings file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warning", "silent, error, warning or verbose")

	root.AddCommand(newListCmd(a), newEmitCmd(a), newVariantsCmd(a))
	return root
}
