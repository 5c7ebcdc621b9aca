package core

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AssetList ordered assets with at most one entry per asset info
//
// Adding an asset whose info is already listed merges the amounts.
// Entries keep the order in which their info was first added.
type AssetList struct {
	assets []Asset
	index  map[AssetInfo]int
}

// NewAssetList new list holding the merged assets
func NewAssetList(assets ...Asset) (*AssetList, error) {
	list := &AssetList{}
	if err := list.AddMany(assets...); err != nil {
		return nil, err
	}

	return list, nil
}

// Len number of entries
func (l *AssetList) Len() int {
	return len(l.assets)
}

// Find entry of info
func (l *AssetList) Find(info AssetInfo) (Asset, bool) {
	if idx, ok := l.index[info]; ok {
		return l.assets[idx], true
	}

	return Asset{}, false
}

// Add merge asset into the entry of the same info, or append it
func (l *AssetList) Add(asset Asset) error {
	if err := asset.validAmount(); err != nil {
		return err
	}

	if idx, ok := l.index[asset.Info]; ok {
		sum, err := l.assets[idx].Add(asset)
		if err != nil {
			return err
		}
		l.assets[idx] = sum
		return nil
	}

	if l.index == nil {
		l.index = make(map[AssetInfo]int)
	}

	l.index[asset.Info] = len(l.assets)
	l.assets = append(l.assets, asset)
	return nil
}

// AddMany add every asset, stops at the first failure
func (l *AssetList) AddMany(assets ...Asset) error {
	for _, asset := range assets {
		if err := l.Add(asset); err != nil {
			return err
		}
	}

	return nil
}

// Deduct subtract asset from the entry of the same info
//
// Negative or fractional amounts fail with ErrInvalidInput.
// A missing entry or a smaller amount fails with ErrInsufficientAmount
// and leaves the list unchanged. Entries reaching zero are kept until Purge.
func (l *AssetList) Deduct(asset Asset) error {
	if err := asset.validAmount(); err != nil {
		return err
	}

	idx, ok := l.index[asset.Info]
	if !ok {
		return fmt.Errorf("%w: %s not found in asset list", ErrInsufficientAmount, asset.Info)
	}

	diff, err := l.assets[idx].Sub(asset)
	if err != nil {
		return err
	}

	l.assets[idx] = diff
	return nil
}

// DeductMany deduct every asset; on failure the list is left unchanged
func (l *AssetList) DeductMany(assets ...Asset) error {
	next := l.clone()
	for _, asset := range assets {
		if err := next.Deduct(asset); err != nil {
			return err
		}
	}

	*l = *next
	return nil
}

// Purge remove zero amount entries
func (l *AssetList) Purge() {
	kept := l.assets[:0]
	for _, asset := range l.assets {
		if !asset.IsZero() {
			kept = append(kept, asset)
		}
	}

	// zero the tail
	for i := len(kept); i < len(l.assets); i++ {
		l.assets[i] = Asset{}
	}

	l.assets = kept
	l.reindex()
}

// Assets snapshot of the entries in list order
func (l *AssetList) Assets() []Asset {
	assets := make([]Asset, len(l.assets))
	copy(assets, l.assets)
	return assets
}

// TransferMsgs transfer messages of every entry, in list order
func (l *AssetList) TransferMsgs(recipient string) ([]CosmosMsg, error) {
	msgs := make([]CosmosMsg, 0, len(l.assets))
	for _, asset := range l.assets {
		msg, err := asset.TransferMsg(recipient)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, msg)
	}

	return msgs, nil
}

func (l AssetList) String() string {
	if len(l.assets) == 0 {
		return "[]"
	}

	items := make([]string, len(l.assets))
	for idx, asset := range l.assets {
		items[idx] = asset.String()
	}

	return strings.Join(items, ",")
}

// MarshalJSON encode as an array of assets
func (l AssetList) MarshalJSON() ([]byte, error) {
	if l.assets == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(l.assets)
}

// UnmarshalJSON decode an array of assets, merging duplicates
func (l *AssetList) UnmarshalJSON(b []byte) error {
	var assets []Asset
	if err := json.Unmarshal(b, &assets); err != nil {
		return err
	}

	next := &AssetList{}
	if err := next.AddMany(assets...); err != nil {
		return err
	}

	*l = *next
	return nil
}

func (l *AssetList) clone() *AssetList {
	next := &AssetList{assets: l.Assets()}
	next.reindex()
	return next
}

func (l *AssetList) reindex() {
	l.index = make(map[AssetInfo]int, len(l.assets))
	for idx, asset := range l.assets {
		l.index[asset.Info] = idx
	}
}
