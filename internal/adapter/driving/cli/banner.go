package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/diillson/buildops-audit-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner() {
	banner := `
     ____        _ _     _  ___                  _             _ _ _
    | __ ) _   _(_) | __| |/ _ \ _ __  ___      / \  _   _  __| (_) |_
    |  _ \| | | | | |/ _' | | | | '_ \/ __|    / _ \| | | |/ _' | | __|
    | |_) | |_| | | | (_| | |_| | |_) \__ \   / ___ \ |_| | (_| | | |_
    |____/ \__,_|_|_|\__,_|\___/| .__/|___/  /_/   \_\__,_|\__,_|_|\__|
                                |_|
        `
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(cyan(banner))
	fmt.Println(blue(fmt.Sprintf("BuildOps Audit CLI (v%s)", version.FormatVersion())))
}
