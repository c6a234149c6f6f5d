// Package shell emits the integration snippets that make `hop <needle>`
// change the caller's working directory.
//
// A child process cannot chdir its parent, so navigation is a thin shell
// function: it asks `hop query` for the best match and cd's to whatever
// path comes back. The engine never touches the shell; this package only
// prints text for the user's rc file.
package shell

import (
	"fmt"
	"strings"
)

// Supported lists the shells Init can generate a snippet for.
var Supported = []string{"bash", "zsh", "fish"}

// Init returns the integration snippet for the named shell. The snippet
// defines a function (default name "hop") that forwards subcommands to the
// binary untouched and turns everything else into a query-and-cd.
func Init(shellName string) (string, error) {
	switch shellName {
	case "bash", "zsh":
		return posixSnippet, nil
	case "fish":
		return fishSnippet, nil
	default:
		return "", fmt.Errorf("unsupported shell %q (supported: %s)",
			shellName, strings.Join(Supported, ", "))
	}
}

const posixSnippet = `# hop shell integration; add 'eval "$(hop init bash)"' to your rc file.
hop() {
    if [ "$#" -eq 0 ]; then
        command hop
        return
    fi
    case "$1" in
        query|q|scan|pick|mark|unmark|marks|init|serve|help|h|-*)
            command hop "$@"
            return
            ;;
    esac
    local _hop_dest
    _hop_dest="$(command hop query -- "$@")" || return
    cd "$_hop_dest" || return
}
`

const fishSnippet = `# hop shell integration; add 'hop init fish | source' to your config.fish.
function hop
    if test (count $argv) -eq 0
        command hop
        return
    end
    switch $argv[1]
        case query q scan pick mark unmark marks init serve help h '-*'
            command hop $argv
            return
    end
    set -l _hop_dest (command hop query -- $argv)
    or return
    cd $_hop_dest
end
`
