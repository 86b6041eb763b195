package cli

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Xausdorf/pix-brcode/internal/app"
	"github.com/Xausdorf/pix-brcode/internal/usecase/generatebrcode"
)

type generateOptions struct {
	name        string
	city        string
	country     string
	identifier  string
	key         string
	keyType     string
	amount      string
	description string
	unique      bool
	qrPath      string
}

func newGenerateCommand(rt *runtime) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a static BR Code payload",
		Long: `Generate a static PIX payload ("copia e cola") and print it to stdout.
With --qr the payload is also rendered as a PNG QR code.`,
		Example: `  # Payload without amount
  brcode generate --name Weslley --city "Sao Paulo" --identifier '***' \
    --key example123456@example.com --key-type EMAIL --description Teste

  # Payload with amount, rendered to a file
  brcode generate --name Weslley --city "Sao Paulo" --identifier '***' \
    --key +5564996474879 --key-type PHONE --amount 100 --qr pix.png`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, rt, opts)
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "receiver name (max 25 characters)")
	cmd.Flags().StringVar(&opts.city, "city", "", "receiver city (max 15 characters)")
	cmd.Flags().StringVar(&opts.country, "country", "BR", "receiver ISO 3166-1 alpha-2 country code")
	cmd.Flags().StringVar(&opts.identifier, "identifier", "***", "transaction identifier (max 25 characters)")
	cmd.Flags().StringVar(&opts.key, "key", "", "PIX key")
	cmd.Flags().StringVar(&opts.keyType, "key-type", "", "key type (EMAIL, PHONE, CPF, CNPJ, RANDOM)")
	cmd.Flags().StringVar(&opts.amount, "amount", "", "transaction amount, omitted when empty")
	cmd.Flags().StringVar(&opts.description, "description", "", "additional information (max 77 characters)")
	cmd.Flags().BoolVar(&opts.unique, "unique", false, "mark as a unique transaction")
	cmd.Flags().StringVar(&opts.qrPath, "qr", "", "write a PNG QR code to this path")

	return cmd
}

func runGenerate(cmd *cobra.Command, rt *runtime, opts *generateOptions) error {
	req := generatebrcode.Request{
		ReceiverName:        opts.name,
		ReceiverCity:        opts.city,
		ReceiverCountryCode: opts.country,
		Identifier:          opts.identifier,
		Key:                 opts.key,
		KeyType:             opts.keyType,
		Description:         opts.description,
		IsUniqueTransaction: opts.unique,
	}

	if opts.amount != "" {
		amount, err := decimal.NewFromString(opts.amount)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", opts.amount, err)
		}
		req.Amount = &amount
	}

	uc, err := app.NewUseCase(rt.cfg)
	if err != nil {
		return err
	}

	resp, err := uc.Execute(req)
	if err != nil {
		return err
	}

	if opts.qrPath != "" {
		png, err := uc.ExecuteQR(req)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.qrPath, png, 0o644); err != nil {
			return fmt.Errorf("failed to write qr code: %w", err)
		}
		rt.logger.Debug().Str("path", opts.qrPath).Int("bytes", len(png)).Msg("qr code written")
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), resp.Payload)
	return err
}
