package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	"github.com/tsumegolab/puzzlenet/datasets"
	"github.com/tsumegolab/puzzlenet/datasets/tsumego"
)

func tallyLabels(path string) (*datasets.Tally, error) {
	_, labels, err := tsumego.Load(path, true)
	if err != nil {
		return nil, err
	}
	var tally datasets.Tally
	tally.Init(tsumego.NumClasses)
	for i := 0; i < labels.Dim(0); i++ {
		tally.Add(int(labels.Record(i)[0]))
	}
	return &tally, nil
}

func infoAction(c *cli.Context) error {
	path := c.String("data")
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	tally, err := tallyLabels(path)
	if err != nil {
		return err
	}
	var classes int
	for class := 0; class < tally.Len(); class++ {
		if tally.Count(class) > 0 {
			classes++
		}
	}
	fmt.Printf("file:     %s (%s)\n", path, humanize.IBytes(uint64(info.Size())))
	fmt.Printf("records:  %s\n", humanize.Comma(int64(tally.Total())))
	fmt.Printf("classes:  %d of %d in use\n", classes, tally.Len())
	if tally.Total() > 0 {
		majority := tally.Majority()
		fmt.Printf("majority: label %d (%d%% of records)\n", majority,
			tally.Count(majority)*100/tally.Total())
	}
	return nil
}

func histogramAction(c *cli.Context) error {
	tally, err := tallyLabels(c.String("data"))
	if err != nil {
		return err
	}
	if tally.Total() == 0 {
		fmt.Println("no records")
		return nil
	}
	const barWidth = 60
	max := tally.Count(tally.Majority())
	for class := 0; class < tally.Len(); class++ {
		count := tally.Count(class)
		if count == 0 {
			continue
		}
		bar := strings.Repeat("#", int(count*barWidth/max))
		fmt.Printf("%3d %8d %s\n", class, count, bar)
	}
	return nil
}

func showAction(c *cli.Context) error {
	images, labels, err := tsumego.Load(c.String("data"), true)
	if err != nil {
		return err
	}
	index := c.Int("index")
	if index < 0 || index >= images.Dim(0) {
		return fmt.Errorf("record %d out of range, file has %d records", index, images.Dim(0))
	}
	for y := 0; y < tsumego.BoardHeight; y++ {
		var row strings.Builder
		for x := 0; x < tsumego.BoardWidth; x++ {
			switch {
			case images.At(index, y, x, tsumego.ChannelInBounds) == 0:
				row.WriteByte(' ')
			case images.At(index, y, x, tsumego.ChannelBlack) != 0:
				row.WriteByte('X')
			case images.At(index, y, x, tsumego.ChannelWhite) != 0:
				row.WriteByte('O')
			default:
				row.WriteByte('.')
			}
		}
		fmt.Println(row.String())
	}
	fmt.Printf("label: %d\n", int(labels.Record(index)[0]))
	return nil
}
