package discord

import "strconv"

// sticker.go represents all structures for a sticker.

// StickerType represents the type of sticker.
type StickerType uint16

const (
	StickerTypeStandard StickerType = 1 + iota
	StickerTypeGuild
)

var StickerTypes = NewEnum("StickerType",
	Member("standard", StickerTypeStandard),
	Member("guild", StickerTypeGuild),
)

func (t StickerType) String() string {
	if name := StickerTypes.NameOf(t); name != "" {
		return name
	}

	return strconv.Itoa(int(t))
}

// StickerFormatType represents the sticker format.
type StickerFormatType uint16

const (
	StickerFormatTypePNG StickerFormatType = 1 + iota
	StickerFormatTypeAPNG
	StickerFormatTypeLOTTIE
	StickerFormatTypeGIF
)

var StickerFormatTypes = NewEnum("StickerFormatType",
	Member("png", StickerFormatTypePNG),
	Member("apng", StickerFormatTypeAPNG),
	Member("lottie", StickerFormatTypeLOTTIE),
	Member("gif", StickerFormatTypeGIF),
)

func (t StickerFormatType) String() string {
	if name := StickerFormatTypes.NameOf(t); name != "" {
		return name
	}

	return strconv.Itoa(int(t))
}

// Sticker represents a sticker object.
type Sticker struct {
	PackID      *Snowflake        `json:"pack_id,omitempty"`
	GuildID     *GuildID          `json:"guild_id,omitempty"`
	User        *User             `json:"user,omitempty"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Tags        string            `json:"tags"`
	ID          StickerID         `json:"id"`
	SortValue   int32             `json:"sort_value"`
	Type        StickerType       `json:"type"`
	FormatType  StickerFormatType `json:"format_type"`
	Available   bool              `json:"available"`
}

// StickerPack represents a pack of standard stickers.
type StickerPack struct {
	CoverStickerID *StickerID  `json:"cover_sticker_id,omitempty"`
	BannerAssetID  *Snowflake  `json:"banner_asset_id,omitempty"`
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	Stickers       StickerList `json:"stickers"`
	ID             Snowflake   `json:"id"`
	SkuID          Snowflake   `json:"sku_id"`
}

// MessageSticker represents a sticker in a message.
type MessageSticker struct {
	Name       string            `json:"name"`
	ID         StickerID         `json:"id"`
	FormatType StickerFormatType `json:"format_type"`
}

// StickerParams represents the arguments to modify a guild sticker.
type StickerParams struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Tags        *string `json:"tags,omitempty"`
}
