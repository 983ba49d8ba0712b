package reader

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"

	"qlaunch/internal/domain"
)

// ErrUnknownDemo is returned when a demo's header cannot be decoded.
var ErrUnknownDemo = errors.New("unknown demo format")

const (
	maxDemoBlock  = 64 << 10
	maxDemoBlocks = 16
)

// Quake (and Hexen II) server message ids.
const (
	q1Nop        = 1
	q1Print      = 8
	q1StuffText  = 9
	q1ServerInfo = 11
	q1CDTrack    = 32
)

// Quake II server message ids.
const (
	q2Nop          = 6
	q2Print        = 10
	q2StuffText    = 11
	q2ServerData   = 12
	q2ConfigString = 13

	q2ModelsIndex = 32 // CS_MODELS; CS_MODELS+1 is the world model
)

const (
	protocolRMQ   = 999
	protocolH2    = 18
	protocolH2MP  = 19
	gameTypeDeath = 1
)

// QuakeDemoInfo decodes the header of a NetQuake or Hexen II .dem file.
func QuakeDemoInfo(_ string, r io.ReadSeeker) (*domain.DemoInfo, error) {
	br := bufio.NewReader(r)
	if err := skipCDTrack(br); err != nil {
		return nil, err
	}
	for block := 0; block < maxDemoBlocks; block++ {
		var size int32
		if err := binary.Read(br, binary.LittleEndian, &size); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnknownDemo, err)
		}
		if size < 0 || size > maxDemoBlock {
			return nil, ErrUnknownDemo
		}
		// View angles.
		if _, err := br.Discard(12); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnknownDemo, err)
		}
		msg := make([]byte, size)
		if _, err := io.ReadFull(br, msg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnknownDemo, err)
		}
		info, err := parseQuakeBlock(bytes.NewReader(msg))
		if err != nil {
			return nil, err
		}
		if info != nil {
			return info, nil
		}
	}
	return nil, ErrUnknownDemo
}

// skipCDTrack consumes the leading "<track>\n" line of a .dem file.
func skipCDTrack(br *bufio.Reader) error {
	for i := 0; i < 12; i++ {
		c, err := br.ReadByte()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnknownDemo, err)
		}
		switch {
		case c == '\n':
			if i == 0 {
				return ErrUnknownDemo
			}
			return nil
		case c == '-' || (c >= '0' && c <= '9'):
		default:
			return ErrUnknownDemo
		}
	}
	return ErrUnknownDemo
}

// parseQuakeBlock returns the demo info when msg holds svc_serverinfo, nil
// when it holds only messages that precede it.
func parseQuakeBlock(msg *bytes.Reader) (*domain.DemoInfo, error) {
	for msg.Len() > 0 {
		cmd, _ := msg.ReadByte()
		switch cmd {
		case q1Nop:
		case q1Print, q1StuffText:
			if _, err := readCString(msg); err != nil {
				return nil, err
			}
		case q1CDTrack:
			if _, err := msg.Seek(2, io.SeekCurrent); err != nil {
				return nil, ErrUnknownDemo
			}
		case q1ServerInfo:
			return parseQuakeServerInfo(msg)
		default:
			return nil, ErrUnknownDemo
		}
	}
	return nil, nil
}

func parseQuakeServerInfo(msg *bytes.Reader) (*domain.DemoInfo, error) {
	var protocol int32
	if err := binary.Read(msg, binary.LittleEndian, &protocol); err != nil {
		return nil, ErrUnknownDemo
	}
	if protocol == protocolRMQ {
		var flags int32
		if err := binary.Read(msg, binary.LittleEndian, &flags); err != nil {
			return nil, ErrUnknownDemo
		}
	}
	if _, err := msg.ReadByte(); err != nil { // maxclients
		return nil, ErrUnknownDemo
	}
	gameType, err := msg.ReadByte()
	if err != nil {
		return nil, ErrUnknownDemo
	}
	if (protocol == protocolH2 || protocol == protocolH2MP) && gameType == gameTypeDeath {
		// King of the hill player.
		if _, err := msg.Seek(2, io.SeekCurrent); err != nil {
			return nil, ErrUnknownDemo
		}
	}
	title, err := readCString(msg)
	if err != nil {
		return nil, err
	}
	// The first model precache is the world.
	model, err := readCString(msg)
	if err != nil || model == "" {
		return nil, ErrUnknownDemo
	}
	return &domain.DemoInfo{Title: title, MapFilePath: model}, nil
}

// Quake2DemoInfo decodes the header of a Quake II .dm2 file.
func Quake2DemoInfo(_ string, r io.ReadSeeker) (*domain.DemoInfo, error) {
	br := bufio.NewReader(r)
	var info *domain.DemoInfo
	for block := 0; block < maxDemoBlocks; block++ {
		var size int32
		if err := binary.Read(br, binary.LittleEndian, &size); err != nil {
			break
		}
		if size == -1 {
			break
		}
		if size < 0 || size > maxDemoBlock {
			return nil, ErrUnknownDemo
		}
		msg := make([]byte, size)
		if _, err := io.ReadFull(br, msg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnknownDemo, err)
		}
		done, err := parseQuake2Block(bytes.NewReader(msg), &info)
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
	}
	if info == nil || info.MapFilePath == "" {
		return nil, ErrUnknownDemo
	}
	return info, nil
}

// parseQuake2Block fills info from serverdata and configstrings. It reports
// done once the world model is known or a message past the connection
// preamble is reached.
func parseQuake2Block(msg *bytes.Reader, info **domain.DemoInfo) (bool, error) {
	for msg.Len() > 0 {
		cmd, _ := msg.ReadByte()
		switch cmd {
		case q2Nop:
		case q2Print:
			if _, err := msg.ReadByte(); err != nil {
				return false, ErrUnknownDemo
			}
			if _, err := readCString(msg); err != nil {
				return false, err
			}
		case q2StuffText:
			if _, err := readCString(msg); err != nil {
				return false, err
			}
		case q2ServerData:
			var hdr struct {
				Protocol    int32
				ServerCount int32
				AttractLoop byte
			}
			if err := binary.Read(msg, binary.LittleEndian, &hdr); err != nil {
				return false, ErrUnknownDemo
			}
			gameDir, err := readCString(msg)
			if err != nil {
				return false, err
			}
			var playerNum int16
			if err := binary.Read(msg, binary.LittleEndian, &playerNum); err != nil {
				return false, ErrUnknownDemo
			}
			title, err := readCString(msg)
			if err != nil {
				return false, err
			}
			*info = &domain.DemoInfo{Title: title, ModName: gameDir}
		case q2ConfigString:
			var index int16
			if err := binary.Read(msg, binary.LittleEndian, &index); err != nil {
				return false, ErrUnknownDemo
			}
			value, err := readCString(msg)
			if err != nil {
				return false, err
			}
			if index == q2ModelsIndex+1 && *info != nil {
				(*info).MapFilePath = value
				return true, nil
			}
		default:
			return true, nil
		}
	}
	return false, nil
}

func readCString(r *bytes.Reader) (string, error) {
	var sb strings.Builder
	for {
		c, err := r.ReadByte()
		if err != nil {
			return "", ErrUnknownDemo
		}
		if c == 0 {
			return sb.String(), nil
		}
		sb.WriteByte(c)
	}
}
