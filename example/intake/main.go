package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/openai"

	"github.com/monjil99/intakeagent/language"
	"github.com/monjil99/intakeagent/session"
)

func main() {
	conf := flag.String("config", "config.json", "path to config file")
	flag.Parse()
	config, err := loadConfig(*conf)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := startApp(context.Background(), config); err != nil {
		log.Fatalf("start app: %v", err)
	}
}

func startApp(ctx context.Context, config *Config) error {
	slog.SetLogLoggerLevel(slog.LevelInfo)

	var svc language.Service = language.NewLocal()
	if config.APIKey != "" {
		cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
			APIKey:  config.APIKey,
			Model:   config.Model,
			BaseURL: config.BaseURL,
		})
		if err != nil {
			return err
		}
		toolBased, err := language.NewToolBased(cm)
		if err != nil {
			return err
		}
		svc = language.NewFailback(toolBased, language.NewLocal())
	}

	sess := session.New(svc)
	sink := &fileSink{dir: "submissions"}

	welcome, err := sess.Bind(sampleTemplate())
	if err != nil {
		return err
	}
	fmt.Printf("%s\n======\n", welcome)

	prompt, err := sess.NextPrompt()
	if err != nil {
		return err
	}
	fmt.Printf("\nAssistant: %s\n", prompt.Text)

	reader := bufio.NewReader(os.Stdin)
	for !sess.Completed() {
		fmt.Print("\nYou: ")
		input, rErr := reader.ReadString('\n')
		if rErr != nil {
			fmt.Println("Input closed, exiting.")
			return nil
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		turn, tErr := sess.Submit(ctx, input)
		if tErr != nil {
			return tErr
		}
		fmt.Printf("\nAssistant: %s\n", turn.Message)
	}

	record, err := sess.Finalize("Assistance request from intake chatbot")
	if err != nil {
		return err
	}
	if err := sink.Save(ctx, record); err != nil {
		return err
	}
	fmt.Printf("\n%s\n", sess.Summary())
	fmt.Printf("Submission %s saved.\n", record.AssistanceRequestID)
	return nil
}
