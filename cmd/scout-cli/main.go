// README: Interactive terminal client for the chat API.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"scout/internal/modules/session"
)

const greeting = "Hello! I'm your Restaurant Scout. Tell me what you're craving and where, and I'll find great spots for you."

func main() {
	defaultBase := os.Getenv("SCOUT_API_BASE_URL")
	if defaultBase == "" {
		defaultBase = "http://localhost:8080"
	}
	baseURL := flag.String("base-url", defaultBase, "chat API base URL")
	flag.Parse()

	log := session.NewLog()
	log.Append(session.NewMessage(session.TypeAssistant, greeting))
	client := session.NewClient(*baseURL, log)
	fmt.Println("scout: " + greeting)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("you: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "quit" || input == "exit" {
			break
		}

		replies := client.Send(context.Background(), input)
		for _, msg := range replies {
			printMessage(msg)
		}
	}
}

func printMessage(msg session.Message) {
	switch msg.Type {
	case session.TypeRecommendations:
		fmt.Println("scout: " + msg.Content)
		for i, r := range msg.Restaurants {
			fmt.Printf("  %d. %s", i+1, r.Name)
			if r.Rating > 0 {
				fmt.Printf("  %.1f stars (%d reviews)", r.Rating, r.ReviewCount)
			}
			if r.Price != "" {
				fmt.Printf("  %s", r.Price)
			}
			fmt.Println()
			if len(r.Cuisine) > 0 {
				fmt.Printf("     %s\n", strings.Join(r.Cuisine, ", "))
			}
			if r.Distance != "" {
				fmt.Printf("     %s\n", r.Distance)
			}
			for _, h := range r.Highlights {
				fmt.Printf("     - %s\n", h)
			}
		}
	default:
		fmt.Println("scout: " + msg.Content)
	}
}
