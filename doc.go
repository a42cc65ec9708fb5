// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package argbox registers, resolves and validates program arguments.
//
// A program declares the arguments it accepts, then hands argbox its raw
// argument vector once:
//
//	box := argbox.New()
//	box.MustRegister(argbox.Definition{
//		Name:      "Name",
//		ShortCall: "-nm",
//		LongCall:  "--name",
//		HelpText:  "The user name.",
//		Mandatory: true,
//		Validator: func(v string) bool { return strings.HasPrefix(v, "B") },
//	})
//
//	if box.IsHelpRequested(os.Args[1:]) {
//		fmt.Print(box.Help())
//		return
//	}
//	res, err := box.Resolve(os.Args[1:])
//
// Resolution never stops at the first problem. A failed Resolve returns an
// *Error listing every missing mandatory argument, missing or invalid value
// and, unless leftovers are allowed, every unused token.
//
// argbox never writes to stdout or stderr; printing help and errors is left
// to the host program.
package argbox
