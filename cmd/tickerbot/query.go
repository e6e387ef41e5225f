package main

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/raykavin/tickerbot/pkg/command"
	"github.com/raykavin/tickerbot/pkg/core"
	"github.com/spf13/cobra"
)

func runPrice(cmd *cobra.Command, args []string) error {
	market, err := loadMarket()
	if err != nil {
		return err
	}

	price, err := market.Price(commandContext(cmd), args[0])
	if err != nil {
		return err
	}

	renderTable(cmd.OutOrStdout(), []string{"Symbol", "Price"}, [][]string{{args[0], price}})
	return nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	market, err := loadMarket()
	if err != nil {
		return err
	}

	ticker, err := market.Ticker(commandContext(cmd), args[0])
	if err != nil {
		return err
	}

	renderTickers(cmd.OutOrStdout(), []core.Ticker{ticker})
	return nil
}

func runTop(cmd *cobra.Command, _ []string) error {
	market, err := loadMarket()
	if err != nil {
		return err
	}

	tickers, err := market.Tickers(commandContext(cmd))
	if err != nil {
		return err
	}

	top, err := command.TopByVolume(tickers, topSize)
	if err != nil {
		return err
	}

	renderTickers(cmd.OutOrStdout(), top)
	return nil
}

func renderTickers(w io.Writer, tickers []core.Ticker) {
	rows := make([][]string, 0, len(tickers))
	for _, t := range tickers {
		rows = append(rows, []string{t.Symbol, t.Last, t.ChangePercent + "%", t.High, t.Low, t.Volume, t.QuoteVolume})
	}
	renderTable(w, []string{"Symbol", "Last", "Change", "High", "Low", "Volume", "Quote Volume"}, rows)
}

func renderTable(w io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.AppendBulk(rows)
	table.Render()
}
