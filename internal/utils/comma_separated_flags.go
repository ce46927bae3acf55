package utils

import (
	"flag"
	"strings"
)

// CommaSeparatedFlags creates a struct usable with the flag library for
// passing a comma-separated list of strings as one command-line argument.
//
// Call InitFlag() on the returned struct before flag.Parse().
func CommaSeparatedFlags(name string, values []string, usage string) CommaSeparatedFlagsData {
	return CommaSeparatedFlagsData{
		Name:   name,
		Values: values,
		Info:   usage,
	}
}

type CommaSeparatedFlagsData struct {
	Name   string
	Values []string
	Info   string
}

func (csl *CommaSeparatedFlagsData) Set(values string) error {
	csl.Values = strings.Split(values, ",")
	return nil
}

func (csl *CommaSeparatedFlagsData) String() string {
	return strings.Join(csl.Values, ",")
}

func (csl *CommaSeparatedFlagsData) InitFlag() {
	flag.Var(csl, csl.Name, csl.Info)
}
