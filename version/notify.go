package version

import (
	"context"
	"fmt"

	"github.com/spf13/viper"
	"github.com/vidrock-cli/vidrock/color"
	"github.com/vidrock-cli/vidrock/constant"
	"github.com/vidrock-cli/vidrock/icon"
	"github.com/vidrock-cli/vidrock/key"
	"github.com/vidrock-cli/vidrock/style"
	"github.com/vidrock-cli/vidrock/util"
)

// Notify displays a terminal alert if a more recent stable application version is available.
func Notify(ctx context.Context) {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	latest, err := Latest(ctx)
	erase()
	if err != nil {
		return
	}

	if comp, err := Compare(latest, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint(Repository+"/releases/tag/v"+latest),
	)
}
