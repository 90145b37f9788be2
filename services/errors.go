package services

import "errors"

// lookup ไม่เจอ → ฝั่ง controller ตอบ 404
var ErrNotFound = errors.New("not found")
