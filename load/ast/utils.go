package ast

import "bytes"

// SplitTokens 分割标识符
// 数字只在 token 开头时按数值读取，标识符内部的数字（如 E_fin_eV_2）保持完整。
func SplitTokens(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	for i := range data {
		switch data[i] {
		case '#':
			if i != 0 {
				return i, data[:i], nil
			}
			return scanComment(data, atEOF)
		case '1', '2', '3', '4', '5', '6', '7', '8', '9', '0', '+', '-':
			if i != 0 {
				continue
			}
			for i < len(data) {
				c := data[i]
				if (c >= '0' && c <= '9') || c == '.' || c == 'e' || c == 'E' ||
					c == 'i' || c == 'j' || c == '+' || c == '-' {
					i++
					continue
				}
				break
			}
			if i == len(data) && !atEOF {
				return 0, nil, nil
			}
			return i, data[:i], nil
		case '/':
			if len(data) > i+1 {
				switch data[i+1] {
				case '*':
					if i != 0 {
						return i, data[:i], nil
					}
					if j := bytes.Index(data, []byte("*/")); j >= 0 {
						j += 2
						return j, data[0:j], nil
					}
					if !atEOF {
						return 0, nil, nil
					}
					return len(data), data, nil
				case '/':
					if i != 0 {
						return i, data[:i], nil
					}
					return scanComment(data, atEOF)
				}
			} else if !atEOF {
				return 0, nil, nil
			}
			if i != 0 {
				continue
			}
			return i + 1, data[0 : i+1], nil
		case ' ', '	', '\r', '\n':
			if i != 0 {
				return i, data[:i], nil
			}
			return i + 1, data[0 : i+1], nil
		}
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// scanComment 读取到行尾（不消耗换行符，保证行号计数正确）
func scanComment(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
