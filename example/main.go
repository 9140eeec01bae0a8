package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/256dpi/tally"
	"github.com/256dpi/tally/wire"

	"github.com/montanaflynn/stats"
)

const rounds = 10_000

func main() {
	// get dir
	dir, err := filepath.Abs("./data")
	if err != nil {
		panic(err)
	}

	// remove dir
	err = os.RemoveAll(dir)
	if err != nil {
		panic(err)
	}

	// open db
	db, err := tally.OpenDB(dir)
	if err != nil {
		panic(err)
	}

	// create host
	host := tally.NewHost(db, &tally.PadCodec{Length: 20})

	// initialize ledger
	err = host.Init("creator", &wire.Init{
		Name:     "Ash token",
		Symbol:   "ASH",
		Decimals: 5,
		InitialBalances: []wire.InitialBalance{
			{Address: "alice", Amount: "1000000"},
			{Address: "bob", Amount: "1000000"},
		},
	})
	if err != nil {
		panic(err)
	}

	// transfer back and forth while collecting latencies
	diffs := make([]float64, 0, rounds)
	for i := 0; i < rounds; i++ {
		// select direction
		sender, recipient := "alice", "bob"
		if i%2 == 1 {
			sender, recipient = "bob", "alice"
		}

		// perform transfer
		start := time.Now()
		_, err = host.Handle(sender, &wire.Transfer{
			Recipient: recipient,
			Amount:    "1",
		})
		if err != nil {
			panic(err)
		}

		// save diff
		diffs = append(diffs, float64(time.Since(start))/float64(time.Millisecond))
	}

	// get stats
	min, _ := stats.Min(diffs)
	mean, _ := stats.Mean(diffs)
	p90, _ := stats.Percentile(diffs, 90)
	p99, _ := stats.Percentile(diffs, 99)
	max, _ := stats.Max(diffs)

	// print stats
	fmt.Printf("transfers: %d, ", rounds)
	fmt.Printf("min: %.3fms, ", min)
	fmt.Printf("mean: %.3fms, ", mean)
	fmt.Printf("p90: %.3fms, ", p90)
	fmt.Printf("p99: %.3fms, ", p99)
	fmt.Printf("max: %.3fms\n", max)

	// query final balances
	for _, address := range []string{"alice", "bob"} {
		data, ref, err := host.Query(&wire.Balance{Address: address})
		if err != nil {
			panic(err)
		}

		var res wire.BalanceResponse
		err = res.Decode(data)
		if err != nil {
			panic(err)
		}
		ref.Release()

		fmt.Printf("%s: %s\n", address, res.Balance)
	}

	// close db
	err = db.Close()
	if err != nil {
		panic(err)
	}
}
