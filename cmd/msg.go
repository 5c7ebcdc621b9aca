package cmd

import (
	"encoding/json"

	"cwasset/core"

	"github.com/spf13/cobra"
)

var msgCmd = &cobra.Command{
	Use:   "msg",
	Short: "print the message that moves an asset",
}

var transferCmd = &cobra.Command{
	Use:     "transfer",
	Aliases: []string{"tf"},
	Short:   "transfer an asset to a recipient",
	Run: func(cmd *cobra.Command, args []string) {
		asset := mustAsset(cmd)
		recipient := mustAddress(cmd, "to")

		msg, err := asset.TransferMsg(recipient)
		if err != nil {
			panic(err)
		}

		printJSON(cmd, msg)
	},
}

var transferFromCmd = &cobra.Command{
	Use:     "transfer-from",
	Aliases: []string{"tff"},
	Short:   "draw a cw20 token from an owner using an allowance",
	Run: func(cmd *cobra.Command, args []string) {
		asset := mustAsset(cmd)
		owner := mustAddress(cmd, "owner")
		recipient := mustAddress(cmd, "to")

		msg, err := asset.TransferFromMsg(owner, recipient)
		if err != nil {
			panic(err)
		}

		printJSON(cmd, msg)
	},
}

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "send a cw20 token to a contract with a receive payload",
	Run: func(cmd *cobra.Command, args []string) {
		asset := mustAsset(cmd)
		contract := mustAddress(cmd, "contract")

		payload := mustFlag(cmd, "msg")
		if !json.Valid([]byte(payload)) {
			panic("invalid msg, must be json")
		}

		msg, err := asset.SendMsg(contract, core.Binary(payload))
		if err != nil {
			panic(err)
		}

		printJSON(cmd, msg)
	},
}

var allowanceCmd = &cobra.Command{
	Use:     "allowance",
	Aliases: []string{"ia"},
	Short:   "increase the allowance of a spender",
	Run: func(cmd *cobra.Command, args []string) {
		asset := mustAsset(cmd)
		spender := mustAddress(cmd, "spender")

		v, _ := cmd.Flags().GetString("expires")
		expires, err := parseExpiration(v)
		if err != nil {
			panic(err)
		}

		msg, err := asset.IncreaseAllowanceMsg(spender, expires)
		if err != nil {
			panic(err)
		}

		printJSON(cmd, msg)
	},
}

func init() {
	rootCmd.AddCommand(msgCmd)
	msgCmd.AddCommand(transferCmd, transferFromCmd, sendCmd, allowanceCmd)

	for _, c := range []*cobra.Command{transferCmd, transferFromCmd, sendCmd, allowanceCmd} {
		c.Flags().StringP("asset", "a", "", "asset, e.g. native:uusd:100 or cw20:{contract}:100")
	}

	transferCmd.Flags().StringP("to", "t", "", "recipient address")

	transferFromCmd.Flags().StringP("owner", "o", "", "owner address")
	transferFromCmd.Flags().StringP("to", "t", "", "recipient address")

	sendCmd.Flags().StringP("contract", "c", "", "receiving contract address")
	sendCmd.Flags().StringP("msg", "m", "", "json payload for the receive hook")

	allowanceCmd.Flags().StringP("spender", "s", "", "spender address")
	allowanceCmd.Flags().StringP("expires", "e", "", "height:{n}, time:{unix nanos} or never")
}
