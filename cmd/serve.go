package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidrock-cli/vidrock/color"
	"github.com/vidrock-cli/vidrock/icon"
	"github.com/vidrock-cli/vidrock/key"
	"github.com/vidrock-cli/vidrock/style"
	"github.com/vidrock-cli/vidrock/web"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "Listen address, overrides server.addr")
	lo.Must0(viper.BindPFlag(key.ServerAddr, serveCmd.Flags().Lookup("addr")))
	serveCmd.Flags().Bool("h2c", false, "Serve cleartext HTTP/2, overrides server.h2c")
	lo.Must0(viper.BindPFlag(key.ServerH2C, serveCmd.Flags().Lookup("h2c")))
}

// serveCmd runs the landing page until interrupted.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the landing page with the player preview and documentation",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		addr := viper.GetString(key.ServerAddr)
		fmt.Printf(
			"%s serving on %s\n",
			style.Fg(color.Green)(icon.Get(icon.Link)),
			style.Fg(color.Yellow)(addr),
		)

		handleErr(web.New().ListenAndServe(ctx, addr))
	},
}
