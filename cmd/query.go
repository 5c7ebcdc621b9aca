package cmd

import (
	"cwasset/core"
	"cwasset/pkg/number"

	"github.com/fox-one/pkg/logger"
	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:     "query",
	Aliases: []string{"q"},
	Short:   "build or dispatch balance queries",
}

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "print the balance query of an asset, or its result with --exec",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		log := logger.FromContext(ctx)

		info := mustInfo(mustFlag(cmd, "info"))
		address := mustAddress(cmd, "address")

		exec, _ := cmd.Flags().GetBool("exec")
		if !exec {
			query, err := info.BalanceQuery(address)
			if err != nil {
				panic(err)
			}
			printJSON(cmd, query)
			return
		}

		amount, err := info.QueryBalance(ctx, provideQuerier(), address)
		if err != nil {
			log.WithError(err).Errorln("query balance")
			panic(err)
		}

		cmd.Println(core.NewAsset(info, amount).String())
		log.Debugln("balance", number.Format(amount))
	},
}

var balancesCmd = &cobra.Command{
	Use:   "balances",
	Short: "query the balances of several assets",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		address := mustAddress(cmd, "address")

		raw, err := cmd.Flags().GetStringSlice("info")
		if err != nil || len(raw) == 0 {
			panic("invalid info")
		}

		infos := make([]core.AssetInfo, 0, len(raw))
		for _, s := range raw {
			infos = append(infos, mustInfo(s))
		}

		list, err := provideBalanceService().Balances(ctx, address, infos...)
		if err != nil {
			panic(err)
		}

		printJSON(cmd, list)
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.AddCommand(balanceCmd, balancesCmd)

	balanceCmd.Flags().StringP("info", "i", "", "asset info, e.g. native:uusd or cw20:{contract}")
	balanceCmd.Flags().StringP("address", "a", "", "account address")
	balanceCmd.Flags().Bool("exec", false, "dispatch the query to the configured lcd")

	balancesCmd.Flags().StringSliceP("info", "i", nil, "asset infos")
	balancesCmd.Flags().StringP("address", "a", "", "account address")
}
