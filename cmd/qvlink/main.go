// Copyright (c) 2025 QuickVote contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// qvlink resolves an election on a QuickVote server and puts its share
// link on the clipboard.
//
// Usage:
//
//	qvlink [-s http://localhost:3327] [-b https://vote.example.com] <vote|results> <electionID>
//
// The link has the form <base>/#view:ID. When the clipboard is not
// available the link is printed for manual copying instead; that is a
// warning, never a failure.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/dustin/go-humanize"

	"github.com/quickvote/quickvote/client"
	"github.com/quickvote/quickvote/idgen"
	"github.com/quickvote/quickvote/models"
	"github.com/quickvote/quickvote/share"
)

func main() {
	server := flag.String("s", "http://localhost:3327", "QuickVote server address")
	base := flag.String("b", "", "Public base URL for the link (defaults to the server address)")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: qvlink [-s server] [-b base-url] <vote|results> <electionID>")
		os.Exit(2)
	}
	view := flag.Arg(0)
	if view != share.ViewVote && view != share.ViewResults {
		fmt.Fprintf(os.Stderr, "unknown view %q (want vote or results)\n", view)
		os.Exit(2)
	}
	id := idgen.Normalize(flag.Arg(1))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c := client.New(*server, "")
	hv, err := c.GetElection(ctx, id)
	if err != nil {
		if client.IsStatus(err, http.StatusNotFound) {
			fmt.Fprintf(os.Stderr, "election %s not found\n", id)
		} else {
			fmt.Fprintf(os.Stderr, "failed to load election: %v\n", err)
		}
		os.Exit(1)
	}

	e := hv.Election
	fmt.Printf("%s  [%s]\n", e.Title, e.Status)
	fmt.Printf("created %s\n", humanize.Time(e.CreatedAt))
	if e.AutoCloseAt != nil && e.Status == models.StatusOpen {
		fmt.Printf("auto-closes %s\n", humanize.Time(*e.AutoCloseAt))
	}
	if hv.Codes != nil {
		fmt.Printf("codes: %d issued, %d used\n", hv.Codes.Issued, hv.Codes.Used)
	}

	linkBase := *base
	if linkBase == "" {
		linkBase = *server
	}
	link := share.URL(linkBase, view, id)

	if err := clipboard.WriteAll(link); err != nil {
		fmt.Fprintln(os.Stderr, "warning: copy failed, copy the link manually:")
		fmt.Println(link)
		return
	}
	fmt.Printf("copied to clipboard: %s\n", link)
}
