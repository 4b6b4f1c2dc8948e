package respcache

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"net/http"
)

// encode packs: [4 bytes status][4 bytes headerLen][headerJSON][body]
func encode(resp *Response) ([]byte, error) {
	hdrJSON, err := json.Marshal(resp.Header)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal headers: %w", err)
	}

	out := make([]byte, 8+len(hdrJSON)+len(resp.Body))
	binary.BigEndian.PutUint32(out[0:4], uint32(resp.StatusCode))
	binary.BigEndian.PutUint32(out[4:8], uint32(len(hdrJSON)))
	copy(out[8:], hdrJSON)
	copy(out[8+len(hdrJSON):], resp.Body)
	return out, nil
}

func decode(bs []byte) (*Response, error) {
	if len(bs) < 8 {
		return nil, fmt.Errorf("cached payload too short: %d bytes", len(bs))
	}

	status := int(binary.BigEndian.Uint32(bs[0:4]))
	hlen := int(binary.BigEndian.Uint32(bs[4:8]))
	if hlen < 0 || 8+hlen > len(bs) {
		return nil, fmt.Errorf("cached payload header length %d out of range", hlen)
	}

	hdr := make(http.Header)
	if hlen > 0 {
		if err := json.Unmarshal(bs[8:8+hlen], &hdr); err != nil {
			return nil, fmt.Errorf("failed to unmarshal headers: %w", err)
		}
	}

	body := make([]byte, len(bs)-8-hlen)
	copy(body, bs[8+hlen:])

	return &Response{Header: hdr, Body: body, StatusCode: status}, nil
}
