package main

import "flag"
import "fmt"
import "log/slog"
import "os"

import "github.com/tsumegolab/puzzlenet/datasets"
import "github.com/tsumegolab/puzzlenet/datasets/tsumego"
import "github.com/tsumegolab/puzzlenet/inference"
import "github.com/tsumegolab/puzzlenet/net/convnet"

func main() {
	data := flag.String("data", "", "puzzle examples .bin file")
	model := flag.String("model", "", "trained model .json.lzw file")
	flag.Parse()

	if *data == "" || *model == "" {
		println("data file and model are mandatory")
		return
	}

	images, labels, err := tsumego.Load(*data, false)
	if err != nil {
		slog.Error("loading dataset", "file", *data, "err", err)
		os.Exit(1)
	}

	net := buildNetwork()
	if err := net.ReadCompressedWeightsFromFile(*model); err != nil {
		slog.Error("loading model", "file", *model, "err", err)
		os.Exit(1)
	}

	classes := inference.Classify(net, images)

	var correct int
	var perClassHit [tsumego.NumClasses]uint64
	var tally datasets.Tally
	tally.Init(tsumego.NumClasses)
	for i, predicted := range classes {
		expected := convnet.Argmax(labels.Record(i))
		tally.Add(expected)
		if predicted == expected {
			correct++
			perClassHit[expected]++
		}
	}

	if len(classes) == 0 {
		println("no records")
		return
	}
	fmt.Printf("accuracy: %d/%d (%d%%)\n", correct, len(classes), correct*100/len(classes))
	for class := 0; class < tally.Len(); class++ {
		total := tally.Count(class)
		if total == 0 {
			continue
		}
		fmt.Printf("class %3d: %6d records, %3d%% correct\n", class, total, perClassHit[class]*100/total)
	}
}
