// eposctl sends a test receipt to an ePOS-Print capable printer.
//
// Configuration comes from the environment:
//
//	EPOS_ADDRESS     printer base URL (default http://192.168.1.194)
//	EPOS_DEVICE      device id (default local_printer)
//	EPOS_TIMEOUT_MS  request timeout in milliseconds (default 10000)
//	EPOS_DEBUG       set to 1 for wire-level logging
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/fearful-symmetry/epos-go"
	"github.com/fearful-symmetry/epos-go/command"
	"github.com/fearful-symmetry/epos-go/status"
)

func main() {
	viper.AutomaticEnv()
	viper.SetDefault("EPOS_ADDRESS", "http://192.168.1.194")
	viper.SetDefault("EPOS_DEVICE", "local_printer")
	viper.SetDefault("EPOS_TIMEOUT_MS", 10000)

	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()
	if viper.GetBool("EPOS_DEBUG") {
		logger = logger.Level(zerolog.TraceLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	address := viper.GetString("EPOS_ADDRESS")
	timeout := time.Duration(viper.GetInt("EPOS_TIMEOUT_MS")) * time.Millisecond

	printer, err := epos.New(address, timeout, viper.GetString("EPOS_DEVICE"),
		epos.WithLogger(logger))
	if err != nil {
		logger.Fatal().Err(err).Msg("configuration rejected")
	}

	job := printer.Normal()
	job.Add(
		&command.Text{Text: "eposctl test receipt\n", DoubleWidth: true, DoubleHeight: true, Align: command.AlignCenter},
		&command.Text{Text: time.Now().Format(time.RFC1123) + "\n", Align: command.AlignCenter},
		&command.Hline{X1: 100, X2: 476},
		&command.Symbol{Data: "https://example.com/receipt", Type: command.SymbolQRCodeModel2, Level: command.LevelM},
		&command.Feed{Line: 3},
		&command.Cut{Type: command.CutFeed},
	)

	logger.Info().Str("address", address).Msg("sending test receipt")

	res, err := job.Print(ctx)
	if err != nil {
		var fault *status.FaultError
		switch {
		case errors.As(err, &fault):
			logger.Fatal().
				Str("code", fault.Result.Code).
				Str("printer_status", fault.Result.Printer().String()).
				Msg("printer rejected the job")
		case errors.Is(err, status.ErrProtocolViolation):
			logger.Fatal().Err(err).Msg("printer reply was not understood")
		default:
			logger.Fatal().Err(err).Msg("print failed")
		}
	}

	logger.Info().
		Stringer("job_id", res.JobID).
		Msg("receipt printed")
}
