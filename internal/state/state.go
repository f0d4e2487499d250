// Package state persists player settings and per-file walk records between
// sessions in an encrypted file under the user config directory.
package state

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"hash/crc32"
	"os"
	"path/filepath"
	"time"

	"github.com/vinser/linwalk/internal/flags"
	"github.com/vinser/linwalk/internal/geoip"
	"github.com/vinser/linwalk/internal/sound"
)

const (
	// Sprite sizes
	SpriteSmall   = "small"
	SpriteMedium  = "medium"
	SpriteLarge   = "large"
	SpriteDefault = SpriteMedium

	// Themes
	ThemeAuto    = "auto"
	ThemeDay     = "day"
	ThemeNight   = "night"
	ThemeDefault = ThemeAuto

	SpeedDefault = flags.DefaultSpeed
)

// ErrCorrupt is returned when the save file fails decryption or its checksum.
var ErrCorrupt = errors.New("state: save file is corrupt")

// Record is the outcome of the last full walk over one path file.
type Record struct {
	Steps int       `json:"steps"`
	Turns int       `json:"turns"`
	Final string    `json:"final"` // walker state name
	Best  int       `json:"best"`  // most steps seen for this file
	At    time.Time `json:"at"`
}

// State holds persistent settings and records.
type State struct {
	SpriteSize   string              `json:"sprite_size"`
	Speed        int                 `json:"speed_ms"`
	Theme        string              `json:"theme"`
	Mute         bool                `json:"mute"`
	LastFile     string              `json:"last_file"`
	Records      map[string]Record   `json:"records"` // keyed by Digest of the file contents
	LocationInfo *geoip.LocationInfo `json:"location_info,omitempty"`
	SoundManager *sound.Manager      `json:"-"`

	path string
}

// New returns default settings bound to the default save path.
func New() *State {
	s := defaults()
	s.path, _ = savePath()
	return s
}

func defaults() *State {
	return &State{
		SpriteSize: SpriteDefault,
		Speed:      SpeedDefault,
		Theme:      ThemeDefault,
		Records:    make(map[string]Record),
	}
}

// Load reads the default save file and falls back to defaults when it is
// missing or unreadable.
func Load() *State {
	path, err := savePath()
	if err != nil {
		return New()
	}
	s, err := LoadFrom(path)
	if err != nil {
		s = defaults()
		s.path = path
	}
	return s
}

// LoadFrom reads, decrypts and verifies the save file at path.
func LoadFrom(path string) (*State, error) {
	encrypted, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	decrypted, err := decrypt(encrypted)
	if err != nil || len(decrypted) < 5 {
		return nil, ErrCorrupt
	}
	crcStored := binary.LittleEndian.Uint32(decrypted[:4])
	payload := decrypted[4:]
	if crc32.ChecksumIEEE(payload) != crcStored {
		return nil, ErrCorrupt
	}
	s := defaults()
	if err := json.Unmarshal(payload, s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if s.Records == nil {
		s.Records = make(map[string]Record)
	}
	s.path = path
	return s, nil
}

// Save persists the state to the file it was loaded from.
func (s *State) Save() error {
	if s.path == "" {
		path, err := savePath()
		if err != nil {
			return err
		}
		s.path = path
	}
	return s.SaveTo(s.path)
}

// SaveTo writes the encrypted state with a CRC32 integrity prefix.
func (s *State) SaveTo(path string) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	data := make([]byte, 4+len(raw))
	binary.LittleEndian.PutUint32(data[:4], crc32.ChecksumIEEE(raw))
	copy(data[4:], raw)

	encrypted, err := encrypt(data)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, encrypted, 0o600)
}

// Apply copies every explicitly given command-line option over the saved
// settings.
func (s *State) Apply(f *flags.Flags) {
	if f.IsSet("sprite-size") {
		s.SpriteSize = f.Sprite
	}
	if f.IsSet("speed") {
		s.Speed = f.Speed
	}
	if f.IsSet("theme") {
		s.Theme = f.Theme
	}
	if f.IsSet("mute") {
		s.SetMute(f.Mute)
	}
}

// SetMute flips the mute setting and applies it to the sound manager.
func (s *State) SetMute(mute bool) {
	s.Mute = mute
	s.SoundManager.SetMuted(mute)
}

// Digest identifies a path file by its contents.
func Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Record returns the stored outcome for a file digest.
func (s *State) Record(digest string) (Record, bool) {
	r, ok := s.Records[digest]
	return r, ok
}

// UpdateAndSave stores the outcome of a finished walk and persists it.
// Best keeps the longest walk seen for the file.
func (s *State) UpdateAndSave(digest string, r Record) error {
	prev := s.Records[digest]
	r.Best = max(prev.Best, r.Steps)
	if r.At.IsZero() {
		r.At = time.Now()
	}
	s.Records[digest] = r
	return s.Save()
}

// savePath returns the save file inside the user config directory.
func savePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "linwalk", "state.dat"), nil
}
