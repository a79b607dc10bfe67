package pathway

import "fmt"

// Channel 振幅通路
type Channel int

const (
	ChannelDirect   Channel = iota // 直接电离
	ChannelResonant                // 共振俘获后衰变
	ChannelIndirect                // 共振与连续态干涉
)

var channelName = map[Channel]string{
	ChannelDirect:   "direct",
	ChannelResonant: "resonant",
	ChannelIndirect: "indirect",
}

// String 返回通路名称
func (c Channel) String() string {
	if n, ok := channelName[c]; ok {
		return n
	}
	return "unknown"
}

// ChannelError 某个通路的积分失败
type ChannelError struct {
	Channel Channel
	Err     error
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("%s 通路: %v", e.Channel, e.Err)
}

func (e *ChannelError) Unwrap() error { return e.Err }
