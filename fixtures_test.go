// Copyright 2026 The Wirekit Authors
// SPDX-License-Identifier: Apache-2.0

package wirekit

// testDate, testLog, testAlarmLog, testDataV1, and testDataV2 mirror
// the Date/Log/AlarmLog/DataV1/DataV2 example types used to exercise
// composition and schema evolution: a derived record delegates to its
// base record's EncodeInto/DecodeFrom before its own fields, and a
// record with fewer or more trailing fields than its counterpart still
// round-trips through the shared parts.

type testDate struct {
	Day, Month, Year int16
}

func (d *testDate) TypeName() string { return "Date" }

func (d *testDate) EncodeInto(c *Codec, sink Sink) error {
	if err := WriteInt16(c, sink, d.Day); err != nil {
		return err
	}
	if err := WriteInt16(c, sink, d.Month); err != nil {
		return err
	}
	return WriteInt16(c, sink, d.Year)
}

func (d *testDate) DecodeFrom(c *Codec, source Source) error {
	if err := ReadInt16(c, source, &d.Day); err != nil {
		return err
	}
	if err := ReadInt16(c, source, &d.Month); err != nil {
		return err
	}
	return ReadInt16(c, source, &d.Year)
}

type testLogType uint16

const (
	testLogAlarm testLogType = iota
	testLogDiagnostic
)

type testLog struct {
	LogType testLogType
	Date    testDate
}

func (l *testLog) TypeName() string { return "Log" }

func (l *testLog) EncodeInto(c *Codec, sink Sink) error {
	if err := WriteUint16(c, sink, uint16(l.LogType)); err != nil {
		return err
	}
	return l.Date.EncodeInto(c, sink)
}

func (l *testLog) DecodeFrom(c *Codec, source Source) error {
	var raw uint16
	if err := ReadUint16(c, source, &raw); err != nil {
		return err
	}
	l.LogType = testLogType(raw)
	return l.Date.DecodeFrom(c, source)
}

type testAlarmLog struct {
	testLog
	AlarmValue uint32
}

func (a *testAlarmLog) TypeName() string { return "AlarmLog" }

func (a *testAlarmLog) EncodeInto(c *Codec, sink Sink) error {
	if err := a.testLog.EncodeInto(c, sink); err != nil {
		return err
	}
	return WriteUint32(c, sink, a.AlarmValue)
}

func (a *testAlarmLog) DecodeFrom(c *Codec, source Source) error {
	if err := a.testLog.DecodeFrom(c, source); err != nil {
		return err
	}
	return ReadUint32(c, source, &a.AlarmValue)
}

// testDataV1 is the "old schema": a single field.
type testDataV1 struct {
	Data int32
}

func (d *testDataV1) TypeName() string { return "DataV1" }

func (d *testDataV1) EncodeInto(c *Codec, sink Sink) error {
	return WriteInt32(c, sink, d.Data)
}

func (d *testDataV1) DecodeFrom(c *Codec, source Source) error {
	return ReadInt32(c, source, &d.Data)
}

// testDataV2 is the "new schema": the same field plus a trailing
// addition, for exercising forward/backward compatibility against
// testDataV1.
type testDataV2 struct {
	Data    int32
	DataNew int32
}

func (d *testDataV2) TypeName() string { return "DataV2" }

func (d *testDataV2) EncodeInto(c *Codec, sink Sink) error {
	if err := WriteInt32(c, sink, d.Data); err != nil {
		return err
	}
	return WriteInt32(c, sink, d.DataNew)
}

func (d *testDataV2) DecodeFrom(c *Codec, source Source) error {
	if err := ReadInt32(c, source, &d.Data); err != nil {
		return err
	}
	return ReadInt32(c, source, &d.DataNew)
}

// testDataV3 is a "new schema" whose trailing addition is a container
// rather than a bare literal, for exercising forward-compat skip over
// a multi-element, self-tagged trailing field against testDataV1.
type testDataV3 struct {
	Data   int32
	Extras []int16
}

func (d *testDataV3) TypeName() string { return "DataV3" }

func (d *testDataV3) EncodeInto(c *Codec, sink Sink) error {
	if err := WriteInt32(c, sink, d.Data); err != nil {
		return err
	}
	return WriteVector(c, sink, d.Extras, WriteInt16)
}

func (d *testDataV3) DecodeFrom(c *Codec, source Source) error {
	if err := ReadInt32(c, source, &d.Data); err != nil {
		return err
	}
	extras, err := ReadVector(c, source, readInt16Elem)
	if err != nil {
		return err
	}
	d.Extras = extras
	return nil
}

func readInt16Elem(c *Codec, source Source) (int16, error) {
	var v int16
	err := ReadInt16(c, source, &v)
	return v, err
}
