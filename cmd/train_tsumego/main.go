package main

import "flag"
import "log/slog"
import "os"

import "github.com/tsumegolab/puzzlenet/datasets/tsumego"
import "github.com/tsumegolab/puzzlenet/trainer"

func main() {
	data := flag.String("data", "", "puzzle examples .bin file")
	config := flag.String("config", "", "TOML hyperparameter file")
	dstmodel := flag.String("dstmodel", "", "model destination .json.lzw file")
	resume := flag.Bool("resume", false, "resume training from dstmodel")
	flag.Parse()

	if *data == "" {
		println("data file is mandatory")
		return
	}

	cfg, err := trainer.LoadConfig(*config)
	if err != nil {
		slog.Error("loading config", "file", *config, "err", err)
		os.Exit(1)
	}

	images, labels, err := tsumego.Load(*data, false)
	if err != nil {
		slog.Error("loading dataset", "file", *data, "err", err)
		os.Exit(1)
	}
	slog.Info("dataset loaded", "file", *data, "records", images.Dim(0))

	net := buildNetwork()
	trainer.Resume(net, resume, dstmodel)

	stats, err := trainer.Train(net, images, labels, cfg, *dstmodel)
	if err != nil {
		slog.Error("training", "err", err)
		os.Exit(1)
	}
	slog.Info("training finished",
		"epochs", stats.Epochs,
		"loss", stats.Loss,
		"accuracy", stats.Accuracy,
		"plateaued", stats.Plateaued,
		"optimizer", cfg.Optimizer,
	)
}
