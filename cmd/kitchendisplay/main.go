package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Bossnapi119/pakawinasiayam/client"
)

// kitchendisplay is a terminal kitchen display: it polls the backend for
// active orders and renders the queue on every change.
func main() {
	baseURL := flag.String("server", "http://localhost:4000", "backend base URL")
	token := flag.String("token", "", "kitchen bearer token")
	flag.Parse()

	if *token == "" {
		log.Fatal("missing -token; log in via POST /api/kitchen/login first")
	}

	api := client.NewAPI(*baseURL, *token)
	sync := client.NewKitchenSync(api)
	sync.OnChange(render)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Println("kitchen display connected to", *baseURL)
	sync.Run(ctx)
}

func render(state client.SyncState) {
	fmt.Print("\033[H\033[2J") // clear screen
	fmt.Println("== KITCHEN DISPLAY ==")

	if state.AccessDenied || state.ConnFailed {
		fmt.Println("!!", state.LastError)
	}

	for _, o := range state.Orders {
		if o.Status == client.ViewStatusCompleted {
			continue
		}
		tag := strings.ToUpper(o.Status)
		loc := o.OrderType
		if o.TableNumber != "" {
			loc += " table " + o.TableNumber
		}
		fmt.Printf("#%s [%s] %s\n", o.ID, tag, loc)
		for _, line := range o.Lines {
			fmt.Println("   ", line)
		}
		if o.SpecialRequest != "" {
			fmt.Println("    NOTE:", o.SpecialRequest)
		}
	}
}
