package commands

import (
	"errors"
	"strings"

	"Ytgrab/yt"
)

// Usage is printed when the argument count is wrong
const Usage = "Usage: ytgrab <url> <folderpath> <filename> <isaudio> <resolution>"

// ErrUsage means the command was not given exactly five arguments
var ErrUsage = errors.New("expected exactly five arguments")

// ParseArgs builds a Request from the arguments following the program name
func ParseArgs(args []string) (*yt.Request, error) {
	if len(args) != 5 {
		return nil, ErrUsage
	}
	return &yt.Request{
		URL:        args[0],
		Folder:     args[1],
		Filename:   args[2],
		AudioOnly:  strings.EqualFold(args[3], "true"),
		Resolution: args[4],
	}, nil
}
