package bot

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gabapcia/transferwatch/internal/pkg/validator"
	"github.com/gabapcia/transferwatch/internal/watchregistry"

	"github.com/ethereum/go-ethereum/common"
)

// errBadArguments is returned when a command's arguments do not parse.
var errBadArguments = errors.New("bad command arguments")

// command is a parsed slash command.
type command struct {
	name string   // lower-case, without the leading slash or @botname
	args []string // whitespace separated arguments
}

// parseCommand extracts the command from text. ok is false for plain text and
// for commands addressed to another bot ("/watch@otherbot").
func parseCommand(text, username string) (cmd command, ok bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return command{}, false
	}

	name, target, addressed := strings.Cut(strings.TrimPrefix(fields[0], "/"), "@")
	if addressed && !strings.EqualFold(target, username) {
		return command{}, false
	}

	if name == "" {
		return command{}, false
	}

	return command{name: strings.ToLower(name), args: fields[1:]}, true
}

type watchArgs struct {
	Token       string `validate:"required,eth_addr"`
	Destination string `validate:"required,eth_addr"`
	Alias       string `validate:"label"`
}

// parseWatchArgs reads "<token> <destination> [alias...]". The alias may
// span several words.
func parseWatchArgs(args []string) (token, destination common.Address, alias string, err error) {
	if len(args) < 2 {
		return common.Address{}, common.Address{}, "", errBadArguments
	}

	in := watchArgs{
		Token:       args[0],
		Destination: args[1],
		Alias:       strings.Join(args[2:], " "),
	}
	if err := validator.Validate(in); err != nil {
		return common.Address{}, common.Address{}, "", errors.Join(errBadArguments, err)
	}

	token, destination, err = parsePair(in.Token, in.Destination)
	return token, destination, in.Alias, err
}

type unwatchArgs struct {
	Token       string `validate:"required,eth_addr"`
	Destination string `validate:"required,eth_addr"`
}

// parseUnwatchArgs reads "<token> <destination>".
func parseUnwatchArgs(args []string) (token, destination common.Address, err error) {
	if len(args) != 2 {
		return common.Address{}, common.Address{}, errBadArguments
	}

	in := unwatchArgs{Token: args[0], Destination: args[1]}
	if err := validator.Validate(in); err != nil {
		return common.Address{}, common.Address{}, errors.Join(errBadArguments, err)
	}

	return parsePair(in.Token, in.Destination)
}

func parsePair(tokenHex, destinationHex string) (token, destination common.Address, err error) {
	token, tokenErr := watchregistry.ParseAddress(tokenHex)
	destination, destinationErr := watchregistry.ParseAddress(destinationHex)
	if err := errors.Join(tokenErr, destinationErr); err != nil {
		return common.Address{}, common.Address{}, errors.Join(errBadArguments, err)
	}

	return token, destination, nil
}

type ownerArgs struct {
	ID string `validate:"required,numeric"`
}

// parseOwnerArgs reads a single chat id. Group chats have negative ids.
func parseOwnerArgs(args []string) (watchregistry.Owner, error) {
	if len(args) != 1 {
		return 0, errBadArguments
	}

	in := ownerArgs{ID: args[0]}
	if err := validator.Validate(in); err != nil {
		return 0, errors.Join(errBadArguments, err)
	}

	id, err := strconv.ParseInt(in.ID, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.Join(errBadArguments, err)
	}

	return watchregistry.Owner(id), nil
}
