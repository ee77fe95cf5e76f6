package runner

import (
	"github.com/projectdiscovery/gologger"
)

var banner = `
   __                        __ ____
  / /  _______ ____  ___/ // ___/__  _______ ____
 / _ \/ __/ _ '/ _ \/ _  // /_ / _ \/ __/ _ '/ -_)
/_.__/_/  \_,_/_//_/\_,_//_/   \___/_/  \_, /\__/
                                       /___/
`

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
}
