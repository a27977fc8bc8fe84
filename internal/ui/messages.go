package ui

import "repodepot/internal/ui/commands"

// searchCompletedMsg is the message a finished search delivers to Update
type searchCompletedMsg = commands.SearchCompletedMsg
