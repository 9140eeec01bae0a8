// Package tally implements a fungible token ledger on top of a flat byte
// oriented key value store.
package tally

/*
Storage Layout

The token constants are stored under the well known keys "name", "symbol" and
"decimals". The total supply is stored under "total_supply" as a 16 byte big
endian integer.

Account balances are stored as 16 byte big endian integers under the keys
"balance" + account, where account is the canonical address of the holder.

Allowances are stored as 16 byte big endian integers under the keys
"allowance" + owner + spender, where owner and spender are canonical
addresses. Nesting the owner first keeps all allowances of one owner in a
contiguous key range.

Missing balance and allowance keys are interpreted as zero. Written values are
never deleted, a zero value is equivalent to a missing key.
*/
