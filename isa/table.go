package isa

func arith(op Op, src Source) Semantic {
	return Semantic{Family: FAMILY_ARITH, Op: op, Source: src}
}

func compare(op Op, src Source) Semantic {
	return Semantic{Family: FAMILY_COMPARE, Op: op, Source: src}
}

func mask(mode MaskMode, op Op, src Source) Semantic {
	return Semantic{Family: FAMILY_MASK, Mask: mode, Op: op, Source: src}
}

func bitwise(op Op, src Source) Semantic {
	return Semantic{Family: FAMILY_BITWISE, Op: op, Source: src}
}

func shift(op Op, src Source) Semantic {
	return Semantic{Family: FAMILY_SHIFT, Op: op, Source: src}
}

func ret(sem Semantic) Semantic {
	sem.Return = true
	return sem
}

func load(width int, signed bool, indexed bool) Semantic {
	return Semantic{Family: FAMILY_LOAD, Width: width, Signed: signed, Indexed: indexed}
}

func store(width int, indexed bool) Semantic {
	return Semantic{Family: FAMILY_STORE, Width: width, Indexed: indexed}
}

func branch(cond Cond, link bool) Semantic {
	return Semantic{Family: FAMILY_BRANCH, Cond: cond, Link: link}
}

type basicEntry struct {
	format      Format
	syntax      string
	template    string
	description string
	semantic    Semantic
}

// _basic_table is the basic instruction set, in catalog order.
var _basic_table = []basicEntry{
	{FORMAT_J, "nop", "000000 00000 00000 00000 00000 000000",
		"Null operation : machine code is all zeroes",
		Semantic{Family: FAMILY_NOP}},

	// Arithmetic
	{FORMAT_R3, "add $t1 = $t2 , $t3", "000000 fffff sssss 0001 ttttt 00000 00",
		"Addition with overflow : set $t1 to ($t2 plus $t3)",
		arith(OP_ADD, SOURCE_REG)},
	{FORMAT_R3, "subf $t1 = $t2 , $t3", "000000 fffff sssss 0010 ttttt 00000 00",
		"Subtraction from with overflow : set $t1 to ($t3 minus $t2)",
		arith(OP_SUBF, SOURCE_REG)},
	{FORMAT_I, "add $t1 = $t2 , -100", "000010 fffff sssss 0000 tttttttttttt",
		"Addition immediate with overflow : set $t1 to ($t2 plus signed 12-bit immediate)",
		arith(OP_ADD, SOURCE_SEXT12)},
	{FORMAT_I, "subf $t1 = $t2 , -100", "000010 fffff sssss 0001 tttttttttttt",
		"Subtraction from immediate with overflow : set $t1 to (signed 12-bit immediate minus $t2)",
		arith(OP_SUBF, SOURCE_SEXT12)},

	// Compare
	{FORMAT_R3, "eq $t1 = $t2 , $t3", "000000 fffff sssss 1011 ttttt 00000 00",
		"Set equal : set $t1 to ($t2 == $t3)",
		compare(OP_EQ, SOURCE_REG)},
	{FORMAT_I, "eq $t1 = $t2 , 100", "000100 fffff sssss 0000 tttttttttttt",
		"Set equal immediate : set $t1 to ($t2 == imm12)",
		compare(OP_EQ, SOURCE_IMM)},
	{FORMAT_R3, "ne $t1 = $t2 , $t3", "000000 fffff sssss 1100 ttttt 00000 00",
		"Set not equal : set $t1 to ($t2 != $t3)",
		compare(OP_NE, SOURCE_REG)},
	{FORMAT_I, "ne $t1 = $t2 , 100", "000100 fffff sssss 0001 tttttttttttt",
		"Set not equal immediate : set $t1 to ($t2 != imm12)",
		compare(OP_NE, SOURCE_IMM)},
	{FORMAT_R3, "lt $t1 = $t2 , $t3", "000000 fffff sssss 1101 ttttt 00000 00",
		"Set less than : set $t1 to ($t2 < $t3)",
		compare(OP_LT, SOURCE_REG)},
	{FORMAT_I, "lt $t1 = $t2 , 100", "000100 fffff sssss 0010 tttttttttttt",
		"Set less than immediate : set $t1 to ($t2 < imm12)",
		compare(OP_LT, SOURCE_IMM)},
	{FORMAT_R3, "ltu $t1 = $t2 , $t3", "000000 fffff sssss 1110 ttttt 00000 00",
		"Set less than magnitude : set $t1 to (|$t2| < |$t3|)",
		compare(OP_LTU, SOURCE_REG)},
	{FORMAT_R3, "ge $t1 = $t2 , $t3", "000000 fffff sssss 1111 ttttt 00000 00",
		"Set greater or equal : set $t1 to ($t2 >= $t3)",
		compare(OP_GE, SOURCE_REG)},
	{FORMAT_I, "ge $t1 = $t2 , 100", "000100 fffff sssss 0011 tttttttttttt",
		"Set greater or equal immediate : set $t1 to ($t2 >= imm12)",
		compare(OP_GE, SOURCE_IMM)},
	{FORMAT_R3, "geu $t1 = $t2 , $t3", "000000 fffff sssss 0000 ttttt 00000 01",
		"Set greater or equal magnitude : set $t1 to (|$t2| >= |$t3|)",
		compare(OP_GEU, SOURCE_REG)},

	// Conditional mask
	{FORMAT_R3, "and_eq $t1 = $t2 , $t3", "000000 fffff sssss 1011 ttttt 00000 01",
		"Rd = (Ra == Rb)? Rd : 0",
		mask(MASK_AND, OP_EQ, SOURCE_REG)},
	{FORMAT_R3, "or_eq $t1 = $t2 , $t3", "000000 fffff sssss 1011 ttttt 00000 10",
		"Rd = (Ra == Rb)? 1 : Rd",
		mask(MASK_OR, OP_EQ, SOURCE_REG)},
	{FORMAT_I, "or_eq $t1 = $t2 , 100", "000100 fffff sssss 1000 tttttttttttt",
		"Rd = (Ra == imm12)? 1 : Rd",
		mask(MASK_OR, OP_EQ, SOURCE_IMM)},
	{FORMAT_R3, "or_ne $t1 = $t2 , $t3", "000000 fffff sssss 1100 ttttt 00000 10",
		"Rd = (Ra != Rb)? 1 : Rd",
		mask(MASK_OR, OP_NE, SOURCE_REG)},
	{FORMAT_I, "or_ne $t1 = $t2 , 100", "000100 fffff sssss 1001 tttttttttttt",
		"Rd = (Ra != imm12)? 1 : Rd",
		mask(MASK_OR, OP_NE, SOURCE_IMM)},
	{FORMAT_I, "and_eq $t1 = $t2 , 100", "000100 fffff sssss 0100 tttttttttttt",
		"Rd = (Ra == imm12)? Rd : 0",
		mask(MASK_AND, OP_EQ, SOURCE_IMM)},
	{FORMAT_R3, "and_ne $t1 = $t2 , $t3", "000000 fffff sssss 1100 ttttt 00000 01",
		"Rd = (Ra != Rb)? Rd : 0",
		mask(MASK_AND, OP_NE, SOURCE_REG)},
	{FORMAT_I, "and_ne $t1 = $t2 , 100", "000100 fffff sssss 0101 tttttttttttt",
		"Rd = (Ra != imm12)? Rd : 0",
		mask(MASK_AND, OP_NE, SOURCE_IMM)},
	{FORMAT_R3, "and_lt $t1 = $t2 , $t3", "000000 fffff sssss 1101 ttttt 00000 01",
		"Rd = (Ra < Rb)? Rd : 0",
		mask(MASK_AND, OP_LT, SOURCE_REG)},
	{FORMAT_R3, "or_lt $t1 = $t2 , $t3", "000000 fffff sssss 1101 ttttt 00000 10",
		"Rd = (Ra < Rb)? 1 : Rd",
		mask(MASK_OR, OP_LT, SOURCE_REG)},
	{FORMAT_I, "or_lt $t1 = $t2 , 100", "000100 fffff sssss 1010 tttttttttttt",
		"Rd = (Ra < imm12)? 1 : Rd",
		mask(MASK_OR, OP_LT, SOURCE_IMM)},
	{FORMAT_I, "and_lt $t1 = $t2 , 100", "000100 fffff sssss 0110 tttttttttttt",
		"Rd = (Ra < imm12)? Rd : 0",
		mask(MASK_AND, OP_LT, SOURCE_IMM)},
	{FORMAT_R3, "and_ltu $t1 = $t2 , $t3", "000000 fffff sssss 1110 ttttt 00000 01",
		"Rd = (|Ra| < |Rb|)? Rd : 0",
		mask(MASK_AND, OP_LTU, SOURCE_REG)},
	{FORMAT_R3, "or_ltu $t1 = $t2 , $t3", "000000 fffff sssss 1110 ttttt 00000 10",
		"Rd = (|Ra| < |Rb|)? 1 : Rd",
		mask(MASK_OR, OP_LTU, SOURCE_REG)},
	{FORMAT_R3, "and_ltu $t1 = $t2 , $t3", "000001 fffff sssss 0000 ttttt 00000 00",
		"Rd = (|Ra| < |Rb|)? Rd : 0",
		mask(MASK_AND, OP_LTU, SOURCE_REG)},
	{FORMAT_R3, "and_ge $t1 = $t2 , $t3", "000000 fffff sssss 1111 ttttt 00000 01",
		"Rd = (Ra >= Rb)? Rd : 0",
		mask(MASK_AND, OP_GE, SOURCE_REG)},
	{FORMAT_R3, "or_ge $t1 = $t2 , $t3", "000000 fffff sssss 1111 ttttt 00000 10",
		"Rd = (Ra >= Rb)? 1 : Rd",
		mask(MASK_OR, OP_GE, SOURCE_REG)},
	{FORMAT_I, "or_ge $t1 = $t2 , 100", "000100 fffff sssss 1011 tttttttttttt",
		"Rd = (Ra >= imm12)? 1 : Rd",
		mask(MASK_OR, OP_GE, SOURCE_IMM)},
	{FORMAT_I, "and_ge $t1 = $t2 , 100", "000100 fffff sssss 0111 tttttttttttt",
		"Rd = (Ra >= imm12)? Rd : 0",
		mask(MASK_AND, OP_GE, SOURCE_IMM)},
	{FORMAT_R3, "and_geu $t1 = $t2 , $t3", "000000 fffff sssss 0000 ttttt 00000 10",
		"Rd = (|Ra| >= |Rb|)? Rd : 0",
		mask(MASK_AND, OP_GEU, SOURCE_REG)},
	{FORMAT_R3, "or_geu $t1 = $t2 , $t3", "000000 fffff sssss 0000 ttttt 00000 11",
		"Rd = (|Ra| >= |Rb|)? 1 : Rd",
		mask(MASK_OR, OP_GEU, SOURCE_REG)},

	// HI/LO
	{FORMAT_R1, "mthi $t1", "000000 fffff 00000 00000 00000 010001",
		"Move to HI register : set HI to contents of $t1",
		Semantic{Family: FAMILY_MOVE, Op: OP_MTHI}},
	{FORMAT_R1, "mtlo $t1", "000000 fffff 00000 00000 00000 010011",
		"Move to LO register : set LO to contents of $t1",
		Semantic{Family: FAMILY_MOVE, Op: OP_MTLO}},

	// Bitwise
	{FORMAT_R3, "and $t1 = $t2 , $t3", "000000 fffff sssss 0011 ttttt 00000 00",
		"Bitwise AND : set $t1 to bitwise AND of $t2 and $t3",
		bitwise(OP_AND, SOURCE_REG)},
	{FORMAT_R3, "or $t1 = $t2 , $t3", "000000 fffff sssss 0100 ttttt 00000 00",
		"Bitwise OR : set $t1 to bitwise OR of $t2 and $t3",
		bitwise(OP_OR, SOURCE_REG)},
	{FORMAT_I, "and $t1 = $t2 , 100", "000010 fffff sssss 0010 tttttttttttt",
		"Bitwise AND immediate : set $t1 to bitwise AND of $t2 and 12-bit immediate",
		bitwise(OP_AND, SOURCE_IMM)},
	{FORMAT_I, "or $t1 = $t2 , 100", "000010 fffff sssss 0011 tttttttttttt",
		"Bitwise OR immediate : set $t1 to bitwise OR of $t2 and 12-bit immediate",
		bitwise(OP_OR, SOURCE_IMM)},
	{FORMAT_R3, "nor $t1 = $t2 , $t3", "000000 fffff sssss 0110 ttttt 00000 00",
		"Bitwise NOR : set $t1 to bitwise NOR of $t2 and $t3",
		bitwise(OP_NOR, SOURCE_REG)},
	{FORMAT_I, "nor $t1 = $t2 , 100", "000010 fffff sssss 0101 tttttttttttt",
		"Bitwise NOR immediate : set $t1 to bitwise NOR of $t2 and 12-bit immediate",
		bitwise(OP_NOR, SOURCE_IMM)},
	{FORMAT_R3, "xor $t1 = $t2 , $t3", "000000 fffff sssss 0101 ttttt 00000 00",
		"Bitwise XOR : set $t1 to bitwise XOR of $t2 and $t3",
		bitwise(OP_XOR, SOURCE_REG)},
	{FORMAT_I, "xor $t1 = $t2 , 100", "000010 fffff sssss 0100 tttttttttttt",
		"Bitwise XOR immediate : set $t1 to bitwise XOR of $t2 and 12-bit immediate",
		bitwise(OP_XOR, SOURCE_IMM)},

	// Shift and rotate
	{FORMAT_I, "shl $t1 = $t2 , 10", "000010 fffff sssss 0110 tttttttttttt",
		"Shift left logical : set $t1 to $t2 shifted left by the immediate",
		shift(OP_SHL, SOURCE_IMM)},
	{FORMAT_R3, "shl $t1 = $t2 , $t3", "000000 fffff sssss 0111 ttttt 00000 00",
		"Shift left logical variable : set $t1 to $t2 shifted left by the low-order 5 bits of $t3",
		shift(OP_SHL, SOURCE_REG)},
	{FORMAT_R3, "ror $t1 = $t2 , $t3", "000000 fffff sssss 1001 ttttt 00000 00",
		"Rotate right variable : set $t1 to $t2 rotated right by the low-order 5 bits of $t3",
		shift(OP_ROR, SOURCE_REG)},
	{FORMAT_I, "ror $t1 = $t2 , 100", "000010 fffff sssss 1001 tttttttttttt",
		"Rotate right : set $t1 to $t2 rotated right by the immediate",
		shift(OP_ROR, SOURCE_IMM)},
	{FORMAT_I, "srl $t1 = $t2 , 10", "000010 fffff sssss 1010 0000000 ttttt",
		"Shift right logical : set $t1 to $t2 shifted right by the 5-bit immediate",
		shift(OP_SHR, SOURCE_IMM)},
	{FORMAT_I, "sar $t1 = $t2 , 10", "000010 fffff sssss 1000 tttttttttttt",
		"Shift right arithmetic : set $t1 to $t2 sign-extended shifted right by the immediate",
		shift(OP_SAR, SOURCE_IMM)},
	{FORMAT_R3, "sar $t1 = $t2 , $t3", "000000 fffff sssss 1010 ttttt 00000 00",
		"Shift right arithmetic variable : set $t1 to $t2 sign-extended shifted right by the low-order 5 bits of $t3",
		shift(OP_SAR, SOURCE_REG)},
	{FORMAT_R3, "shr $t1 = $t2 , $t3", "000000 fffff sssss 1000 ttttt 00000 00",
		"Shift right logical variable : set $t1 to $t2 shifted right by the low-order 5 bits of $t3",
		shift(OP_SHR, SOURCE_REG)},
	{FORMAT_I, "shr $t1 = $t2 , 100", "000010 fffff sssss 0111 tttttttttttt",
		"Shift right logical : set $t1 to $t2 shifted right by the immediate",
		shift(OP_SHR, SOURCE_IMM)},

	// Return-coupled register forms
	{FORMAT_R3, "ret_and $t1 = $t2 , $t3", "000011 fffff sssss 0100 ttttt 00000 00",
		"PC = r31; Bitwise AND : set $t1 to bitwise AND of $t2 and $t3",
		ret(bitwise(OP_AND, SOURCE_REG))},
	{FORMAT_R3, "ret_shl $t1 = $t2 , $t3", "000011 fffff sssss 1000 ttttt 00000 00",
		"PC = r31; Shift left logical variable : set $t1 to $t2 shifted left by the low-order 5 bits of $t3",
		ret(shift(OP_SHL, SOURCE_REG))},
	{FORMAT_R3, "ret_ror $t1 = $t2 , $t3", "000011 fffff sssss 1011 ttttt 00000 00",
		"PC = r31; Rotate right variable : set $t1 to $t2 rotated right by the low-order 5 bits of $t3",
		ret(shift(OP_ROR, SOURCE_REG))},
	{FORMAT_R3, "ret_sar $t1 = $t2 , $t3", "000011 fffff sssss 1010 ttttt 00000 00",
		"PC = r31; Shift right arithmetic variable : set $t1 to $t2 sign-extended shifted right by the low-order 5 bits of $t3",
		ret(shift(OP_SAR, SOURCE_REG))},
	{FORMAT_R3, "ret_add $t1 = $t2 , $t3", "000011 fffff sssss 0000 ttttt 00000 00",
		"PC = r31; Addition with overflow : set $t1 to ($t2 plus $t3)",
		ret(arith(OP_ADD, SOURCE_REG))},
	{FORMAT_R3, "ret_subf $t1 = $t2 , $t3", "000011 fffff sssss 0001 ttttt 00000 00",
		"PC = r31; Subtraction with overflow : set $t1 to ($t2 minus $t3)",
		ret(arith(OP_SUB, SOURCE_REG))},
	{FORMAT_R3, "ret_or $t1 = $t2 , $t3", "000011 fffff sssss 0101 ttttt 00000 00",
		"PC = r31; Bitwise OR : set $t1 to bitwise OR of $t2 and $t3",
		ret(bitwise(OP_OR, SOURCE_REG))},
	{FORMAT_R3, "ret_nor $t1 = $t2 , $t3", "000011 fffff sssss 0111 ttttt 00000 00",
		"PC = r31; Bitwise NOR : set $t1 to bitwise NOR of $t2 and $t3",
		ret(bitwise(OP_NOR, SOURCE_REG))},
	{FORMAT_R3, "ret_xor $t1 = $t2 , $t3", "000011 fffff sssss 0110 ttttt 00000 00",
		"PC = r31; Bitwise XOR : set $t1 to bitwise XOR of $t2 and $t3",
		ret(bitwise(OP_XOR, SOURCE_REG))},
	{FORMAT_R3, "ret_shr $t1 = $t2 , $t3", "000011 fffff sssss 1001 ttttt 00000 00",
		"PC = r31; Shift right logical variable : set $t1 to $t2 shifted right by the low-order 5 bits of $t3",
		ret(shift(OP_SHR, SOURCE_REG))},

	// Return-coupled immediate forms
	{FORMAT_I, "reti_add $t1 = $t2 , -100", "000111 fffff 0000 sssss tttttttttttt",
		"PC = r31; Addition immediate with overflow : set $t1 to ($t2 plus signed 12-bit immediate)",
		ret(arith(OP_ADD, SOURCE_SEXT12))},
	{FORMAT_I, "reti_subf $t1 = $t2 , -100", "000111 fffff 0001 sssss tttttttttttt",
		"PC = r31; Subtraction from immediate with overflow : set $t1 to (signed 12-bit immediate minus $t2)",
		ret(arith(OP_SUBF, SOURCE_SEXT12))},
	{FORMAT_I, "reti_and $t1 = $t2 , 100", "000111 fffff 0100 sssss tttttttttttt",
		"PC = r31; Bitwise AND immediate : set $t1 to bitwise AND of $t2 and 12-bit immediate",
		ret(bitwise(OP_AND, SOURCE_IMM))},
	{FORMAT_I, "reti_or $t1 = $t2 , 100", "000111 fffff 0101 sssss tttttttttttt",
		"PC = r31; Bitwise OR immediate : set $t1 to bitwise OR of $t2 and 12-bit immediate",
		ret(bitwise(OP_OR, SOURCE_IMM))},
	{FORMAT_I, "reti_nor $t1 = $t2 , 100", "000111 fffff 0111 sssss tttttttttttt",
		"PC = r31; Bitwise NOR immediate : set $t1 to bitwise NOR of $t2 and 12-bit immediate",
		ret(bitwise(OP_NOR, SOURCE_IMM))},
	{FORMAT_I, "reti_xor $t1 = $t2 , 100", "000111 fffff 0110 sssss tttttttttttt",
		"PC = r31; Bitwise XOR immediate : set $t1 to bitwise XOR of $t2 and 12-bit immediate",
		ret(bitwise(OP_XOR, SOURCE_IMM))},
	{FORMAT_I, "reti_ror $t1 = $t2 , 100", "000111 fffff 1011 sssss tttttttttttt",
		"PC = r31; Rotate right : set $t1 to $t2 rotated right by the immediate",
		ret(shift(OP_ROR, SOURCE_IMM))},
	{FORMAT_I, "reti_sar $t1 = $t2 , 10", "000111 fffff 1010 sssss tttttttttttt",
		"PC = r31; Shift right arithmetic : set $t1 to $t2 sign-extended shifted right by the immediate",
		ret(shift(OP_SAR, SOURCE_IMM))},
	{FORMAT_I, "reti_shr $t1 = $t2 , 100", "000111 fffff 1001 sssss tttttttttttt",
		"PC = r31; Shift right logical : set $t1 to $t2 shifted right by the immediate",
		ret(shift(OP_SHR, SOURCE_IMM))},
	{FORMAT_I, "reti_shl $t1 = $t2 , 10", "000111 fffff 1000 sssss tttttttttttt",
		"PC = r31; Shift left logical : set $t1 to $t2 shifted left by the immediate",
		ret(shift(OP_SHL, SOURCE_IMM))},

	// Set
	{FORMAT_R1, "set0 $t1 = 100", "110000 fffff sssssssssssssssssssss",
		"Rd = zero_extend(Imm21)",
		Semantic{Family: FAMILY_SET, Op: OP_SET0}},
	{FORMAT_R1, "set1 $t1 = -100", "110001 fffff sssssssssssssssssssss",
		"Rd = one_extend(Imm21)",
		Semantic{Family: FAMILY_SET, Op: OP_SET1}},
	{FORMAT_R1, "sset $t1 = -100", "110010 fffff sssssssssssssssssssss",
		"Rd = Rd<<21 | zero_extend(Imm21)",
		Semantic{Family: FAMILY_SET, Op: OP_SSET}},
	{FORMAT_R1, "addr $t1 = target", "110011 fffff sssssssssssssssssssss",
		"Rd = PC + sign_extend(Imm21)<<2",
		Semantic{Family: FAMILY_SET, Op: OP_ADDR}},

	// Indexed memory
	{FORMAT_R3, "sb $t1, $t2, 1 = $t3", "001001 aaaaa fffff 0000 sssss 00000 tt",
		"MEM[Ra + Rb<<s] <== 1 Rd",
		store(1, true)},
	{FORMAT_R3, "sh $t1, $t2, 1 = $t3", "001001 aaaaa fffff 0001 sssss 00000 tt",
		"MEM[Ra + Rb<<s] <== 2 Rd",
		store(2, true)},
	{FORMAT_R3, "sw $t1, $t2, 1 = $t3", "001001 aaaaa fffff 0010 sssss 00000 tt",
		"MEM[Ra + Rb<<s] <== 4 Rd",
		store(4, true)},
	{FORMAT_R3, "lb $t1 = $t2 , $t3 , 1", "001010 fffff sssss 0000 ttttt 00000 aa",
		"Rd <== 1s MEM[Ra + Rb<<s]",
		load(1, true, true)},
	{FORMAT_R3, "lh $t1 = $t2 , $t3 , 1", "001010 fffff sssss 0001 ttttt 00000 aa",
		"Rd <== 2s MEM[Ra + Rb<<s]",
		load(2, true, true)},
	{FORMAT_R3, "lhu $t1 = $t2 , $t3 , 1", "001010 fffff sssss 1001 ttttt 00000 aa",
		"Rd <== 2z MEM[Ra + Rb<<s]",
		load(2, false, true)},
	{FORMAT_R3, "lbu $t1 = $t2 , $t3 , 1", "001010 fffff sssss 1000 ttttt 00000 aa",
		"Rd <== 1z MEM[Ra + Rb<<s]",
		load(1, false, true)},
	{FORMAT_R3, "lw $t1 = $t2 , $t3 , 1", "001010 fffff sssss 0010 ttttt 00000 aa",
		"Rd <== 4s MEM[Ra + Rb<<s]",
		load(4, true, true)},

	// Immediate memory
	{FORMAT_I, "sb $t1 , -100 = $t2", "001011 ttttt fffff 0000 ssssssssssss",
		"MEM[Ra+Imm12] <== 1 Rd",
		store(1, false)},
	{FORMAT_I, "sh $t1 , -100 = $t2", "001011 ttttt fffff 0001 ssssssssssss",
		"MEM[Ra+Imm12] <== 2 Rd",
		store(2, false)},
	{FORMAT_I, "sw $t1 , -100 = $t2", "001011 ttttt fffff 0010 ssssssssssss",
		"MEM[Ra+Imm12] <== 4 Rd",
		store(4, false)},
	{FORMAT_I, "lb $t1 = $t2 -100", "001000 fffff sssss 0000 tttttttttttt",
		"Rd <== 1s MEM[Ra+Imm12]",
		load(1, true, false)},
	{FORMAT_I, "lh $t1 = $t2 -100", "001000 fffff sssss 0001 tttttttttttt",
		"Rd <== 2s MEM[Ra+Imm12]",
		load(2, true, false)},
	{FORMAT_I, "lhu $t1 = $t2 -100", "001000 fffff sssss 1001 tttttttttttt",
		"Rd <== 2z MEM[Ra+Imm12]",
		load(2, false, false)},
	{FORMAT_I, "lbu $t1 = $t2 -100", "001000 fffff sssss 1000 tttttttttttt",
		"Rd <== 1z MEM[Ra+Imm12]",
		load(1, false, false)},
	{FORMAT_I, "lw $t1 = $t2 -100", "001000 fffff sssss 0010 tttttttttttt",
		"Rd <== 4s MEM[Ra+Imm12]",
		load(4, true, false)},

	// Branch
	{FORMAT_R1, "beqz $t1 , label", "101000 fffff sssssssssssssssssssss",
		"Branch if equal to zero : branch to statement at label's address if $t1 is zero",
		branch(COND_EQZ, false)},
	{FORMAT_R1, "bnez $t1 , label", "101001 fffff sssssssssssssssssssss",
		"Branch if not equal to zero : branch to statement at label's address if $t1 is not zero",
		branch(COND_NEZ, false)},
	{FORMAT_R1, "bltz $t1 , label", "101010 fffff sssssssssssssssssssss",
		"Branch if less than zero : branch to statement at label's address if $t1 is less than zero",
		branch(COND_LTZ, false)},
	{FORMAT_R1, "bgez $t1 , label", "101011 fffff sssssssssssssssssssss",
		"Branch if greater or equal to zero : branch to statement at label's address if $t1 is greater than or equal to zero",
		branch(COND_GEZ, false)},
	{FORMAT_R1, "bgtz $t1 , label", "101100 fffff sssssssssssssssssssss",
		"Branch if greater than zero : branch to statement at label's address if $t1 is greater than zero",
		branch(COND_GTZ, false)},
	{FORMAT_R1, "blez $t1 , label", "101101 fffff sssssssssssssssssssss",
		"Branch if less than or equal to zero : branch to statement at label's address if $t1 is less than or equal to zero",
		branch(COND_LEZ, false)},
	{FORMAT_R1, "bltzal $t1 , label", "101110 fffff sssssssssssssssssssss",
		"Branch if less than zero and link : if $t1 is less than zero, set $ra to the return address and branch to label",
		branch(COND_LTZ, true)},
	{FORMAT_R1, "bgezal $t1 , label", "101111 fffff sssssssssssssssssssss",
		"Branch if greater or equal to zero and link : if $t1 is greater than or equal to zero, set $ra to the return address and branch to label",
		branch(COND_GEZ, true)},

	// Jump
	{FORMAT_R1, "jr $t1", "011110 00000 fffff 00000 00000 000000",
		"Jump register unconditionally : jump to statement whose address is in $t1",
		Semantic{Family: FAMILY_JUMP, Op: OP_JR}},
	{FORMAT_J, "jal target", "111001 ffffffffffffffffffffffffff",
		"Jump and link : set $ra to the return address then jump to statement at target address",
		Semantic{Family: FAMILY_JUMP, Op: OP_J, Link: true}},
	{FORMAT_R3, "jalr $t1 , $t2", "011111 fffff sssss 00000 00000 000000",
		"Jump and link register : set $t1 to the return address then jump to statement whose address is in $t2",
		Semantic{Family: FAMILY_JUMP, Op: OP_JR, Link: true}},
	{FORMAT_J, "j target", "111000 ffffffffffffffffffffffffff",
		"Jump unconditionally : jump to statement at target address",
		Semantic{Family: FAMILY_JUMP, Op: OP_J}},

	// System
	{FORMAT_J, "break", "000000 00000 00000 00000 00000 001101",
		"Break execution : terminate program execution with exception",
		Semantic{Family: FAMILY_BREAK}},
	{FORMAT_J, "syscall", "000000 00000 00000 00000 00000 001100",
		"Issue a system call : execute the system call specified by value in $v0",
		Semantic{Family: FAMILY_SYSCALL}},
}
