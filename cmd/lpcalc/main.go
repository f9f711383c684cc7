package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	ethmath "github.com/ethereum/go-ethereum/common/math"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"liquidityMath/internal/model"
	"liquidityMath/liquidity"
	"liquidityMath/tick"
	"liquidityMath/token"
)

func main() {
	root := &cobra.Command{
		Use:          "lpcalc",
		Short:        "Concentrated-liquidity position calculator",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	liquidityCmd := &cobra.Command{
		Use:   "liquidity",
		Short: "Convert token amounts to liquidity",
		RunE:  runLiquidity,
	}
	liquidityCmd.Flags().Float64("amount0", 0, "token0 amount")
	liquidityCmd.Flags().Float64("amount1", 0, "token1 amount")
	liquidityCmd.Flags().Float64("current", 0, "current price (required with both amounts)")
	addRangeFlags(liquidityCmd.Flags())
	addDecimalFlags(liquidityCmd.Flags())
	root.AddCommand(liquidityCmd)

	amountsCmd := &cobra.Command{
		Use:   "amounts",
		Short: "Convert liquidity to token amounts",
		RunE:  runAmounts,
	}
	amountsCmd.Flags().Float64("liquidity", 0, "position liquidity")
	amountsCmd.Flags().Float64("current", 0, "current price")
	addRangeFlags(amountsCmd.Flags())
	addDecimalFlags(amountsCmd.Flags())
	root.AddCommand(amountsCmd)

	tickCmd := &cobra.Command{
		Use:   "tick",
		Short: "Convert a price to its nearest usable tick",
		RunE:  runTick,
	}
	tickCmd.Flags().Float64("price", 0, "price to convert")
	tickCmd.Flags().Int("spacing", 1, "tick spacing")
	addDecimalFlags(tickCmd.Flags())
	root.AddCommand(tickCmd)

	priceCmd := &cobra.Command{
		Use:   "price",
		Short: "Convert a tick to its price",
		RunE:  runPrice,
	}
	priceCmd.Flags().Int("tick", 0, "tick index")
	addDecimalFlags(priceCmd.Flags())
	root.AddCommand(priceCmd)

	x96Cmd := &cobra.Command{
		Use:   "x96",
		Short: "Encode or decode sqrtPriceX96 values",
	}

	encodeCmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a price as sqrtPriceX96",
		RunE:  runX96Encode,
	}
	encodeCmd.Flags().Float64("price", 0, "price to encode")
	encodeCmd.Flags().Bool("hex", false, "print the encoding as 0x-hex")
	addDecimalFlags(encodeCmd.Flags())
	x96Cmd.AddCommand(encodeCmd)

	decodeCmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a sqrtPriceX96 value to a price",
		RunE:  runX96Decode,
	}
	decodeCmd.Flags().String("x96", "", "sqrtPriceX96 value (decimal or 0x-hex)")
	addDecimalFlags(decodeCmd.Flags())
	x96Cmd.AddCommand(decodeCmd)

	root.AddCommand(x96Cmd)

	evalCmd := &cobra.Command{
		Use:   "eval",
		Short: "Value a batch of positions from a JSONL file",
		RunE:  runEval,
	}
	evalCmd.Flags().String("in", "", "input positions JSONL")
	evalCmd.Flags().String("out", "./data/valuations.jsonl", "output valuations JSONL")
	evalCmd.Flags().String("pg-dsn", "", "optional Postgres DSN")
	evalCmd.Flags().Int("batch-size", 1000, "batch size for sink writes")
	evalCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
	root.AddCommand(evalCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRangeFlags(flags *pflag.FlagSet) {
	flags.Float64("price-a", 0, "one range bound (order does not matter)")
	flags.Float64("price-b", 0, "the other range bound")
}

func addDecimalFlags(flags *pflag.FlagSet) {
	flags.Int("decimals0", 18, "token0 decimals")
	flags.Int("decimals1", 18, "token1 decimals")
}

func decimalsFromFlags(flags *pflag.FlagSet) (token.Decimals, error) {
	decimals0, err := flags.GetInt("decimals0")
	if err != nil {
		return token.Decimals{}, err
	}
	decimals1, err := flags.GetInt("decimals1")
	if err != nil {
		return token.Decimals{}, err
	}
	dec := token.Decimals{Token0: decimals0, Token1: decimals1}
	return dec, dec.Validate()
}

func rangeFromFlags(flags *pflag.FlagSet) (float64, float64, error) {
	if !flags.Changed("price-a") || !flags.Changed("price-b") {
		return 0, 0, fmt.Errorf("--price-a and --price-b are required")
	}
	priceA, _ := flags.GetFloat64("price-a")
	priceB, _ := flags.GetFloat64("price-b")
	return priceA, priceB, nil
}

func runLiquidity(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	dec, err := decimalsFromFlags(flags)
	if err != nil {
		return err
	}
	priceA, priceB, err := rangeFromFlags(flags)
	if err != nil {
		return err
	}

	amount0, _ := flags.GetFloat64("amount0")
	amount1, _ := flags.GetFloat64("amount1")
	current, _ := flags.GetFloat64("current")

	var liq *big.Int
	switch {
	case flags.Changed("amount0") && flags.Changed("amount1"):
		if !flags.Changed("current") {
			return fmt.Errorf("--current is required with both amounts")
		}
		liq, err = liquidity.ForAmounts(amount0, amount1, current, priceA, priceB, dec)
	case flags.Changed("amount0"):
		liq, err = liquidity.ForAmount0(amount0, priceA, priceB, dec)
	case flags.Changed("amount1"):
		liq, err = liquidity.ForAmount1(amount1, priceA, priceB, dec)
	default:
		return fmt.Errorf("--amount0 or --amount1 is required")
	}
	if err != nil {
		return err
	}

	fmt.Println(liq.String())
	return nil
}

func runAmounts(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	dec, err := decimalsFromFlags(flags)
	if err != nil {
		return err
	}
	priceA, priceB, err := rangeFromFlags(flags)
	if err != nil {
		return err
	}
	liq, _ := flags.GetFloat64("liquidity")
	current, _ := flags.GetFloat64("current")

	var amount0, amount1 float64
	if flags.Changed("current") {
		amount0, amount1, err = liquidity.Amounts(liq, current, priceA, priceB, dec)
	} else {
		amount0, err = liquidity.Amount0(liq, priceA, priceB, dec)
		if err == nil {
			amount1, err = liquidity.Amount1(liq, priceA, priceB, dec)
		}
	}
	if err != nil {
		return err
	}

	fmt.Printf("amount0=%s amount1=%s\n", model.FormatAmount(amount0), model.FormatAmount(amount1))
	return nil
}

func runTick(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	dec, err := decimalsFromFlags(flags)
	if err != nil {
		return err
	}
	price, _ := flags.GetFloat64("price")
	spacing, _ := flags.GetInt("spacing")

	tickIndex, err := tick.FromPrice(price, spacing, dec)
	if err != nil {
		return err
	}

	fmt.Println(tickIndex)
	return nil
}

func runPrice(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	dec, err := decimalsFromFlags(flags)
	if err != nil {
		return err
	}
	tickIndex, _ := flags.GetInt("tick")

	price, err := tick.ToPrice(tickIndex, dec)
	if err != nil {
		return err
	}

	fmt.Println(model.FormatAmount(price))
	return nil
}

func runX96Encode(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	dec, err := decimalsFromFlags(flags)
	if err != nil {
		return err
	}
	price, _ := flags.GetFloat64("price")
	asHex, _ := flags.GetBool("hex")

	x96, err := tick.PriceToSqrtX96(price, dec)
	if err != nil {
		return err
	}

	if asHex {
		fmt.Println(hexutil.EncodeBig(x96))
	} else {
		fmt.Println(x96.String())
	}
	return nil
}

func runX96Decode(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	dec, err := decimalsFromFlags(flags)
	if err != nil {
		return err
	}
	raw, _ := flags.GetString("x96")
	if raw == "" {
		return fmt.Errorf("--x96 is required")
	}

	x96, ok := ethmath.ParseBig256(raw)
	if !ok {
		return fmt.Errorf("invalid x96 value: %s", raw)
	}

	price, err := tick.SqrtX96ToPrice(x96, dec)
	if err != nil {
		return err
	}

	fmt.Println(model.FormatAmount(price))
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
