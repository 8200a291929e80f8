package analyzer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// Default bonus points applied when the config omits them.
const (
	defaultThreadReplyBonus = 20
	defaultAttachmentBonus  = 10
)

// WordPoints is one keyword with its point value.
type WordPoints struct {
	Word   string
	Points int
}

// KeywordCategory is an ordered keyword table for one score category.
// Order matters: matched keywords are reported in table order, so decoding
// must preserve the file's key order (a plain map would randomize it).
type KeywordCategory struct {
	Words []WordPoints
}

// BonusConfig holds the intent-score bonus values.
type BonusConfig struct {
	ThreadReply   int
	HasAttachment int
}

// KeywordConfig is the full keyword table set, loaded once at analyzer
// construction and never mutated afterwards.
type KeywordConfig struct {
	ProductClarity KeywordCategory
	BuyingIntent   KeywordCategory
	TradeTerms     KeywordCategory
	SpamKeywords   KeywordCategory
	Bonus          BonusConfig
}

// JargonMap is the ordered Korean-slang substitution table.
type JargonMap struct {
	Entries []JargonEntry
}

// emptyKeywordConfig is the degraded configuration used when the keyword file
// is missing: all keyword contributions become zero, bonuses keep defaults.
func emptyKeywordConfig() *KeywordConfig {
	return &KeywordConfig{
		Bonus: BonusConfig{
			ThreadReply:   defaultThreadReplyBonus,
			HasAttachment: defaultAttachmentBonus,
		},
	}
}

// LoadKeywordConfig reads the keyword tables from a JSON file. A missing or
// unreadable file is not an error: it is logged and an empty table returned,
// degrading keyword sub-scores to zero.
func LoadKeywordConfig(path string, logger *zap.Logger) *KeywordConfig {
	f, err := os.Open(path)
	if err != nil {
		logger.Warn("Keyword config not loaded, keyword scores degrade to zero",
			zap.String("path", path), zap.Error(err))
		return emptyKeywordConfig()
	}
	defer f.Close()

	cfg, err := decodeKeywordConfig(f)
	if err != nil {
		logger.Warn("Keyword config malformed, keyword scores degrade to zero",
			zap.String("path", path), zap.Error(err))
		return emptyKeywordConfig()
	}
	return cfg
}

// LoadJargonMap reads the Korean jargon table from a JSON file, with the same
// load-or-empty contract as LoadKeywordConfig.
func LoadJargonMap(path string, logger *zap.Logger) *JargonMap {
	f, err := os.Open(path)
	if err != nil {
		logger.Warn("Jargon map not loaded, Korean normalization disabled",
			zap.String("path", path), zap.Error(err))
		return &JargonMap{}
	}
	defer f.Close()

	jm, err := decodeJargonMap(f)
	if err != nil {
		logger.Warn("Jargon map malformed, Korean normalization disabled",
			zap.String("path", path), zap.Error(err))
		return &JargonMap{}
	}
	return jm
}

// decodeKeywordConfig parses the keyword file with a token-stream decoder so
// the word order within each category survives decoding.
func decodeKeywordConfig(r io.Reader) (*KeywordConfig, error) {
	cfg := emptyKeywordConfig()
	dec := json.NewDecoder(r)

	err := parseObject(dec, func(key string) error {
		switch key {
		case "product_clarity":
			return parseCategory(dec, &cfg.ProductClarity)
		case "buying_intent":
			return parseCategory(dec, &cfg.BuyingIntent)
		case "trade_terms":
			return parseCategory(dec, &cfg.TradeTerms)
		case "spam_keywords":
			return parseCategory(dec, &cfg.SpamKeywords)
		case "bonus":
			return parseObject(dec, func(bkey string) error {
				var v int
				if err := dec.Decode(&v); err != nil {
					return err
				}
				switch bkey {
				case "thread_reply":
					cfg.Bonus.ThreadReply = v
				case "has_attachment":
					cfg.Bonus.HasAttachment = v
				}
				return nil
			})
		default:
			return skipValue(dec)
		}
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeJargonMap(r io.Reader) (*JargonMap, error) {
	jm := &JargonMap{}
	dec := json.NewDecoder(r)

	err := parseObject(dec, func(key string) error {
		if key != "korean_jargon" {
			return skipValue(dec)
		}
		return parseObject(dec, func(phrase string) error {
			var en string
			if err := dec.Decode(&en); err != nil {
				return err
			}
			jm.Entries = append(jm.Entries, JargonEntry{From: phrase, To: en})
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return jm, nil
}

// parseCategory decodes a {"words": {word: points, ...}} object.
func parseCategory(dec *json.Decoder, cat *KeywordCategory) error {
	return parseObject(dec, func(key string) error {
		if key != "words" {
			return skipValue(dec)
		}
		return parseObject(dec, func(word string) error {
			var pts int
			if err := dec.Decode(&pts); err != nil {
				return err
			}
			cat.Words = append(cat.Words, WordPoints{Word: word, Points: pts})
			return nil
		})
	})
}

// parseObject consumes one JSON object, calling fn for each key. fn must
// consume the key's value from the decoder.
func parseObject(dec *json.Decoder, fn func(key string) error) error {
	t, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := t.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected object, got %v", t)
	}
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := kt.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", kt)
		}
		if err := fn(key); err != nil {
			return err
		}
	}
	_, err = dec.Token() // closing brace
	return err
}

// skipValue discards the next value on the decoder.
func skipValue(dec *json.Decoder) error {
	var raw json.RawMessage
	return dec.Decode(&raw)
}
