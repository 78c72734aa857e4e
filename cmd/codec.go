package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/wavelab/ldpc/benchmarking"
	"github.com/wavelab/ldpc/facade"
	"github.com/wavelab/ldpc/ldpc"

	"github.com/spf13/cobra"
)

var (
	codecK        uint
	codecN        uint
	codecEsNo     float64
	codecMinSum   bool
	codecOptLat   bool
	codecCacheDir string
)

// codecCmd represents the codec command
var codecCmd = &cobra.Command{
	Use:     "codec",
	Aliases: []string{"ed"},
	Short:   "Encode/decode smoke tests through the external decoder facade",
	Long:    `codec exercises facade.LDPCCoder end to end: build or load a [k,n] code, encode a random message, push it through an AWGN channel, and decode it back.`,
}

// codecRoundtripCmd represents the roundtrip command
var codecRoundtripCmd = &cobra.Command{
	Use:   "roundtrip",
	Short: "Encode a random message, corrupt it over a simulated AWGN channel, and decode it back",
	Run: func(cmd *cobra.Command, args []string) {
		rand.Seed(time.Now().UnixNano())

		var coder facade.LDPCCoder
		opts := facade.InitOptions{
			OptimizeAvgLatency: codecOptLat,
			CacheDir:           codecCacheDir,
		}
		if codecMinSum {
			opts.Decoder.Rule = ldpc.MinSum
			opts.Decoder.MinSumOffset = 0.3
		}

		if err := coder.Init(int(codecK), int(codecN), opts); err != nil {
			fmt.Println("Init failed:", err)
			return
		}

		info := make([]byte, codecK)
		for i := range info {
			info[i] = byte(rand.Intn(2))
		}

		cw, err := coder.Encode(info)
		if err != nil {
			fmt.Println("Encode failed:", err)
			return
		}

		llr := benchmarking.AWGN(codecEsNo)(cw)

		cwEst, _, ok := coder.Decode(llr)
		bitErrors := 0
		for i := range cw {
			if cw[i] != cwEst[i] {
				bitErrors++
			}
		}

		fmt.Printf("k=%v n=%v Es/N0=%v syndrome_ok=%v bit_errors=%v/%v\n", codecK, codecN, codecEsNo, ok, bitErrors, len(cw))
	},
}

func init() {
	rootCmd.AddCommand(codecCmd)
	codecCmd.AddCommand(codecRoundtripCmd)

	codecRoundtripCmd.Flags().UintVarP(&codecK, "k", "k", 45, "information bits")
	codecRoundtripCmd.Flags().UintVarP(&codecN, "n", "n", 90, "codeword bits")
	codecRoundtripCmd.Flags().Float64VarP(&codecEsNo, "esno", "e", 5.0, "channel Es/N0")
	codecRoundtripCmd.Flags().BoolVar(&codecMinSum, "min-sum", false, "use the Min-Sum rule instead of Sum-Product")
	codecRoundtripCmd.Flags().BoolVar(&codecOptLat, "optimize-latency", false, "use the higher max-iteration decoder configuration")
	codecRoundtripCmd.Flags().StringVar(&codecCacheDir, "cache-dir", "codes", "on-disk code cache directory")
}
