package model

import (
	"fmt"
	"slices"
)

type CargoMode string

const (
	// CargoModeBulk is a single full load ("hàng nguyên").
	CargoModeBulk CargoMode = "bulk"
	// CargoModeConsolidated is a mixed load of many items ("hàng ghép").
	CargoModeConsolidated CargoMode = "consolidated"
)

func (m CargoMode) Valid() bool {
	return m == CargoModeBulk || m == CargoModeConsolidated
}

func ParseCargoMode(value string) (CargoMode, error) {
	mode := CargoMode(value)
	if !mode.Valid() {
		return "", invalidValue(ErrInvalidCargoMode, value)
	}

	return mode, nil
}

// FileRef points at an uploaded document. Its content is never inspected.
type FileRef struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

func (f *FileRef) clone() *FileRef {
	if f == nil {
		return nil
	}

	c := *f

	return &c
}

type CargoItem struct {
	Name        string   `json:"name"`
	Type        string   `json:"type,omitempty"`
	Quantity    string   `json:"quantity"`
	Dimensions  string   `json:"dimensions,omitempty"`
	PackingSpec string   `json:"packing_spec"`
	PackingList *FileRef `json:"packing_list,omitempty"`
}

type CargoItemPatch struct {
	Name        *string `json:"name"         validate:"omitempty,max=200"`
	Type        *string `json:"type"         validate:"omitempty,max=100"`
	Quantity    *string `json:"quantity"     validate:"omitempty,max=50"`
	Dimensions  *string `json:"dimensions"   validate:"omitempty,max=100"`
	PackingSpec *string `json:"packing_spec" validate:"omitempty,max=200"`
}

func (p CargoItemPatch) apply(item *CargoItem) {
	assign(&item.Name, p.Name)
	assign(&item.Type, p.Type)
	assign(&item.Quantity, p.Quantity)
	assign(&item.Dimensions, p.Dimensions)
	assign(&item.PackingSpec, p.PackingSpec)
}

// CargoManifest keeps exactly one item while in bulk mode. PackingList is the
// aggregate document of a bulk load; it survives a switch to consolidated
// but is only reported while the manifest is bulk.
type CargoManifest struct {
	Mode        CargoMode   `json:"mode"`
	Items       []CargoItem `json:"items"`
	PackingList *FileRef    `json:"packing_list,omitempty"`
}

func NewCargoManifest(mode CargoMode) CargoManifest {
	manifest := CargoManifest{Mode: mode, Items: []CargoItem{}}
	if mode == CargoModeBulk {
		manifest.Items = append(manifest.Items, CargoItem{})
	}

	return manifest
}

// SetMode switches the mode. Going bulk keeps only the first item, or
// creates a blank one when there is none.
func (c *CargoManifest) SetMode(mode CargoMode) error {
	if !mode.Valid() {
		return invalidValue(ErrInvalidCargoMode, string(mode))
	}

	c.Mode = mode

	if mode == CargoModeBulk {
		if len(c.Items) == 0 {
			c.Items = []CargoItem{{}}
		} else {
			c.Items = c.Items[:1:1]
		}
	}

	return nil
}

// AddItem appends a blank item and returns its index.
func (c *CargoManifest) AddItem() (int, error) {
	if c.Mode == CargoModeBulk {
		return -1, ErrBulkSingleItem
	}

	c.Items = append(c.Items, CargoItem{})

	return len(c.Items) - 1, nil
}

func (c *CargoManifest) checkIndex(index int) error {
	if index < 0 || index >= len(c.Items) {
		return fmt.Errorf("%w: index %d", ErrCargoItemNotFound, index)
	}

	return nil
}

func (c *CargoManifest) RemoveItem(index int) error {
	if c.Mode == CargoModeBulk {
		return ErrBulkSingleItem
	}

	if err := c.checkIndex(index); err != nil {
		return err
	}

	c.Items = slices.Delete(c.Items, index, index+1)

	return nil
}

func (c *CargoManifest) UpdateItem(index int, patch CargoItemPatch) (CargoItem, error) {
	if err := c.checkIndex(index); err != nil {
		return CargoItem{}, err
	}

	patch.apply(&c.Items[index])

	return c.Items[index], nil
}

// AttachItemFile sets the per-item packing list and returns the one it replaced.
func (c *CargoManifest) AttachItemFile(index int, ref FileRef) (*FileRef, error) {
	if err := c.checkIndex(index); err != nil {
		return nil, err
	}

	previous := c.Items[index].PackingList
	c.Items[index].PackingList = &ref

	return previous, nil
}

func (c *CargoManifest) DetachItemFile(index int) (*FileRef, error) {
	if err := c.checkIndex(index); err != nil {
		return nil, err
	}

	previous := c.Items[index].PackingList
	c.Items[index].PackingList = nil

	return previous, nil
}

// AttachPackingList sets the aggregate packing list and returns the one it replaced.
func (c *CargoManifest) AttachPackingList(ref FileRef) (*FileRef, error) {
	if c.Mode != CargoModeBulk {
		return nil, ErrPackingListBulkOnly
	}

	previous := c.PackingList
	c.PackingList = &ref

	return previous, nil
}

// ActivePackingList is the aggregate packing list as it should be shown.
func (c *CargoManifest) ActivePackingList() *FileRef {
	if c.Mode != CargoModeBulk {
		return nil
	}

	return c.PackingList
}

func (c *CargoManifest) Validate() error {
	if !c.Mode.Valid() {
		return invalidValue(ErrInvalidCargoMode, string(c.Mode))
	}

	if c.Mode == CargoModeBulk && len(c.Items) != 1 {
		return fmt.Errorf("%w: found %d", ErrBulkSingleItem, len(c.Items))
	}

	return nil
}

// FileKeys lists every stored document the manifest refers to, including a
// retained aggregate packing list.
func (c *CargoManifest) FileKeys() []string {
	keys := []string{}

	if c.PackingList != nil {
		keys = append(keys, c.PackingList.Key)
	}

	for _, item := range c.Items {
		if item.PackingList != nil {
			keys = append(keys, item.PackingList.Key)
		}
	}

	return keys
}

// First returns the first item, or a blank one for an empty manifest.
func (c *CargoManifest) First() CargoItem {
	if len(c.Items) == 0 {
		return CargoItem{}
	}

	return c.Items[0]
}

func (c CargoManifest) Clone() CargoManifest {
	items := make([]CargoItem, len(c.Items))
	for i, item := range c.Items {
		item.PackingList = item.PackingList.clone()
		items[i] = item
	}

	return CargoManifest{
		Mode:        c.Mode,
		Items:       items,
		PackingList: c.PackingList.clone(),
	}
}
