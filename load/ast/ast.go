// Package ast 提供 ELDEST 输入文件的语法树解析。
// 输入文件由 .value 参数命令和注释组成：
//
//	# 共振参数
//	.value Er_a_eV 150.0
//	.value tau_s   2.0e-15 // 寿命
//	/* 积分方法 */
//	.value integ   analytic
package ast

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// 常量定义 - 用于词法分析和语法分析的关键字和符号
const (
	tokenValue             = ".value" // 值设置命令
	tokenNewline           = "\n"     // 换行符
	tokenSpace             = " "      // 空格
	tokenTab               = "	"      // 制表符
	tokenCarriage          = "\r"     // 回车符
	tokenCommentHash       = "#"      // # 注释
	tokenCommentLine       = "//"     // // 行注释
	tokenCommentBlockStart = "/*"     // /* 块注释开始
	tokenCommentBlockEnd   = "*/"     // */ 块注释结束
)

// ValueNode 表示值设置节点
type ValueNode struct {
	Command string // 命令，如 ".value"
	Name    string // 变量名
	Value   Value  // 值
	Line    int    // 行号
}

// CommentNode 表示注释节点
type CommentNode struct {
	Text string // 注释文本
	Line int    // 行号
}

// ParseTree 解析树
type ParseTree struct {
	ValueNodes   []*ValueNode   // 按出现顺序的参数列表
	CommentNodes []*CommentNode // 注释列表
}

// Lookup 按名称查找参数，重复定义时后者生效
func (parseTree *ParseTree) Lookup(name string) (*ValueNode, bool) {
	for i := len(parseTree.ValueNodes) - 1; i >= 0; i-- {
		if parseTree.ValueNodes[i].Name == name {
			return parseTree.ValueNodes[i], true
		}
	}
	return nil, false
}

// String 打印
func (parseTree *ParseTree) String() string {
	return fmt.Sprintf("解析成功! 找到 %d 个值设置, %d 个注释",
		len(parseTree.ValueNodes), len(parseTree.CommentNodes))
}

// NewParseTree 生成输入文件解析树（流式处理，不先收集 tokens）
func NewParseTree(r io.Reader) (parseTree *ParseTree, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(SplitTokens)
	parseTree = &ParseTree{}
	lineNum := 1
	for scanner.Scan() {
		token := scanner.Text()
		// 处理换行符
		if token == tokenNewline {
			lineNum++
			continue
		}
		// 跳过空白
		if isBlank(token) {
			continue
		}
		// 处理注释
		if parseComment(token, lineNum, parseTree) {
			lineNum += strings.Count(token, tokenNewline)
			continue
		}
		// 处理 .value 命令
		if token == tokenValue {
			if err := parseValueCommandFromScanner(scanner, lineNum, parseTree); err != nil {
				return nil, err
			}
			continue
		}
		return nil, errorAtLine(lineNum, "无法识别的内容 '%s'", token)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("读取输入文件时出错: %w", err)
	}
	return parseTree, nil
}

// parseComment 解析注释 token
func parseComment(token string, lineNum int, parseTree *ParseTree) bool {
	switch {
	case token[0] == tokenCommentHash[0]:
		comment := token[1:]
		parseTree.CommentNodes = append(parseTree.CommentNodes, &CommentNode{
			Text: comment,
			Line: lineNum,
		})
		return true
	case len(token) < 2:
		return false
	case token[0:2] == tokenCommentLine:
		comment := token[2:]
		parseTree.CommentNodes = append(parseTree.CommentNodes, &CommentNode{
			Text: comment,
			Line: lineNum,
		})
		return true
	case token[0:2] == tokenCommentBlockStart:
		comment := token[2:]
		if len(comment) >= 2 && comment[len(comment)-2:] == tokenCommentBlockEnd {
			comment = comment[:len(comment)-2]
		}
		parseTree.CommentNodes = append(parseTree.CommentNodes, &CommentNode{
			Text: comment,
			Line: lineNum,
		})
		return true
	}
	return false
}

// parseValueCommandFromScanner 从 scanner 解析 .value 命令
func parseValueCommandFromScanner(scanner *bufio.Scanner, lineNum int, parseTree *ParseTree) error {
	name, err := nextWord(scanner, lineNum, ".value 命令缺少名称")
	if err != nil {
		return err
	}
	valueStr, err := nextWord(scanner, lineNum, ".value 命令 %s 缺少值", name)
	if err != nil {
		return err
	}
	parseTree.ValueNodes = append(parseTree.ValueNodes, &ValueNode{
		Command: tokenValue,
		Name:    name,
		Value:   Value{Value: valueStr, Line: lineNum},
		Line:    lineNum,
	})
	return nil
}

// nextWord 读取同一行的下一个有效 token，跳过空格和制表符
func nextWord(scanner *bufio.Scanner, lineNum int, format string, args ...any) (string, error) {
	for scanner.Scan() {
		token := scanner.Text()
		if isBlank(token) {
			continue
		}
		if token == tokenNewline || token[0] == tokenCommentHash[0] ||
			(len(token) >= 2 && (token[0:2] == tokenCommentLine || token[0:2] == tokenCommentBlockStart)) {
			break
		}
		return token, nil
	}
	return "", errorAtLine(lineNum, format, args...)
}

// isBlank 空格、制表符或回车
func isBlank(token string) bool {
	return token == tokenSpace || token == tokenTab || token == tokenCarriage
}

// errorAtLine 生成带行号的错误信息
func errorAtLine(lineNum int, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("第 %d 行: %s", lineNum, msg)
}
